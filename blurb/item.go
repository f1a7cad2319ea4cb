package blurb

import (
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Fragment is one matched element inside a work blurb.
type Fragment interface {
	// Text returns the fragment's flattened text: every text node of the
	// subtree concatenated, whitespace runs collapsed, ends trimmed.
	Text() string

	// Attr returns the named attribute value and whether it is present.
	Attr(name string) (string, bool)
}

// Item is one work blurb in a search results page, exposed as an
// optional-field lookup. The extractor is written entirely against this
// interface and never touches the underlying parser, so tests can substitute
// hand-built items and the parser can be swapped without touching extraction.
type Item interface {
	// First returns the first fragment matching the CSS selector.
	First(selector string) (Fragment, bool)

	// Select returns up to max fragments matching the CSS selector in
	// source order. max <= 0 means no limit.
	Select(selector string, max int) []Fragment
}

// goqueryItem adapts a goquery selection to the Item interface.
type goqueryItem struct {
	sel *goquery.Selection
}

func (it goqueryItem) First(selector string) (Fragment, bool) {
	found := it.sel.FindMatcher(matcherFor(selector)).First()
	if found.Length() == 0 {
		return nil, false
	}
	return goqueryFragment{sel: found}, true
}

func (it goqueryItem) Select(selector string, max int) []Fragment {
	matches := it.sel.FindMatcher(matcherFor(selector))
	out := make([]Fragment, 0, matches.Length())
	matches.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if max > 0 && i >= max {
			return false
		}
		out = append(out, goqueryFragment{sel: s})
		return true
	})
	return out
}

// goqueryFragment adapts a single-element selection to the Fragment interface.
type goqueryFragment struct {
	sel *goquery.Selection
}

func (f goqueryFragment) Text() string {
	return flattenText(f.sel.Nodes...)
}

func (f goqueryFragment) Attr(name string) (string, bool) {
	return f.sel.Attr(name)
}

var (
	matcherMu sync.RWMutex
	matchers  = map[string]goquery.Matcher{}
)

// matcherFor returns a compiled matcher for the selector, compiling at most
// once per distinct selector. Selectors come from the field table and are
// static; an invalid one panics, which the extractor's item-level recovery
// reports as a structural error.
func matcherFor(selector string) goquery.Matcher {
	matcherMu.RLock()
	m, ok := matchers[selector]
	matcherMu.RUnlock()
	if ok {
		return m
	}

	matcherMu.Lock()
	defer matcherMu.Unlock()
	if m, ok := matchers[selector]; ok {
		return m
	}
	m = cascadia.MustCompile(selector)
	matchers[selector] = m
	return m
}
