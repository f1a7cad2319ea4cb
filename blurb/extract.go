package blurb

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fandomstats/kudoscope/models"
)

// Parse reads one search results page and returns its work blurbs in page
// order. Pages with no blurbs (past the last result page, for instance)
// return an empty slice, not an error.
func Parse(r io.Reader) ([]Item, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("blurb: parse page: %w", err)
	}

	var items []Item
	doc.FindMatcher(matcherFor(itemSelector)).Each(func(_ int, s *goquery.Selection) {
		items = append(items, goqueryItem{sel: s})
	})
	return items, nil
}

// Extract builds a normalized record from one work blurb. ok is false when
// the item has no usable title link (placeholder and deleted-work items are
// expected in search results, skipping them is not an error) or when
// extraction hit unexpected structure.
//
// FandomSearched is left empty: the search driver owns that field.
// Extraction is deterministic; re-extracting the same item yields an
// identical record.
func Extract(it Item, searchTerm string) (w models.Work, ok bool) {
	// An absent field is expected and takes its table default; a panic means
	// the markup broke an assumption the tables can't express. Keep the two
	// apart: the former is silent, the latter is an Error-level skip.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("work blurb extraction panicked, item skipped",
				"term", searchTerm,
				"title", w.Title,
				"panic", r,
			)
			w, ok = models.Work{}, false
		}
	}()

	title, found := it.First(titleSelector)
	if !found {
		slog.Debug("work blurb without title link skipped", "term", searchTerm)
		return models.Work{}, false
	}
	href, _ := title.Attr("href")
	w.Title = title.Text()
	w.WorkID = workIDFromHref(href)
	if w.Title == "" || w.WorkID == "" {
		slog.Debug("work blurb with unusable title link skipped",
			"term", searchTerm,
			"href", href,
		)
		return models.Work{}, false
	}

	for _, f := range textFields {
		v := f.def
		if frag, hit := it.First(f.selector); hit {
			if t := frag.Text(); t != "" {
				v = t
			}
		}
		f.assign(&w, v)
	}

	for _, f := range listFields {
		frags := it.Select(f.selector, f.cap)
		texts := make([]string, 0, len(frags))
		for _, frag := range frags {
			if t := frag.Text(); t != "" {
				texts = append(texts, t)
			}
		}
		f.assign(&w, strings.Join(texts, ", "))
	}
	if w.Fandoms == "" {
		w.Fandoms = searchTerm
	}

	for _, f := range countFields {
		n := 0
		if frag, hit := it.First(f.selector); hit {
			n = parseCount(frag.Text())
		}
		f.assign(&w, n)
	}

	return w, true
}

// workIDFromHref keeps the last path segment of the title link target
// ("/works/12345" → "12345").
func workIDFromHref(href string) string {
	if i := strings.LastIndexByte(href, '/'); i >= 0 {
		return href[i+1:]
	}
	return href
}
