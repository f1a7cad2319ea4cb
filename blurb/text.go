package blurb

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// whitespaceRun matches runs of whitespace including non-breaking spaces,
// which the archive uses inside stat cells.
var whitespaceRun = regexp.MustCompile(`[\s\x{00a0}]+`)

// flattenText concatenates every text node under the given nodes, collapses
// whitespace runs to single spaces, and trims the ends. Adjacent inline
// elements keep their original spacing, so "<a>3</a>/?" stays "3/?".
func flattenText(nodes ...*html.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		writeText(&b, n)
	}
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(b.String(), " "))
}

func writeText(b *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}
