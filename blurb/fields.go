package blurb

import (
	"strconv"
	"strings"

	"github.com/fandomstats/kudoscope/models"
)

// Selectors for the archive's search results markup.
const (
	itemSelector  = "li.work.blurb.group"
	titleSelector = "h4.heading a"
)

// summaryMaxLen is the maximum number of characters kept from a summary.
const summaryMaxLen = 200

// The field tables below are the single home for every optional field's
// selector, default and cap. The extraction loop reads them row by row, so a
// missing field can never abort the rest of a record, and no default literal
// is repeated anywhere else.

// textField is a scalar field: first match wins, absent or empty text
// applies the default.
type textField struct {
	name     string // schema column, for diagnostics
	selector string
	def      string
	assign   func(*models.Work, string)
}

// listField is a joined-list field: up to cap matches in source order,
// joined with ", ". cap <= 0 means no limit.
type listField struct {
	name     string
	selector string
	cap      int
	assign   func(*models.Work, string)
}

// countField is an engagement counter: comma-stripped all-digit text, 0 when
// absent or non-numeric.
type countField struct {
	name     string
	selector string
	assign   func(*models.Work, int)
}

var textFields = []textField{
	{"author", "a[rel=author]", "Anonymous",
		func(w *models.Work, v string) { w.Author = v }},
	{"rating", "span.rating", "Not Rated",
		func(w *models.Work, v string) { w.Rating = v }},
	{"warnings", "span.warnings", "No Archive Warnings Apply",
		func(w *models.Work, v string) { w.Warnings = v }},
	{"category", "span.category", "N/A",
		func(w *models.Work, v string) { w.Category = v }},
	{"language", "dl.stats dd.language", "English",
		func(w *models.Work, v string) { w.Language = v }},
	{"chapters", "dl.stats dd.chapters", "1/1",
		func(w *models.Work, v string) { w.Chapters = v }},
	{"summary", "blockquote.summary", "",
		func(w *models.Work, v string) { w.Summary = truncate(v, summaryMaxLen) }},
}

var listFields = []listField{
	// An empty fandoms join falls back to the search term in Extract.
	{"fandoms", "h5.fandoms a", 0,
		func(w *models.Work, v string) { w.Fandoms = v }},
	{"tags", "li.freeforms", 10,
		func(w *models.Work, v string) { w.Tags = v }},
	{"relationships", "li.relationships", 5,
		func(w *models.Work, v string) { w.Relationships = v }},
	{"characters", "li.characters", 10,
		func(w *models.Work, v string) { w.Characters = v }},
}

var countFields = []countField{
	{"words", "dl.stats dd.words",
		func(w *models.Work, v int) { w.Words = v }},
	{"kudos", "dl.stats dd.kudos",
		func(w *models.Work, v int) { w.Kudos = v }},
	{"bookmarks", "dl.stats dd.bookmarks",
		func(w *models.Work, v int) { w.Bookmarks = v }},
	{"hits", "dl.stats dd.hits",
		func(w *models.Work, v int) { w.Hits = v }},
}

// parseCount parses a stat counter like "1,234". Non-numeric or missing text
// is 0 by contract: the archive omits stat markup entirely for works with
// zero of a stat, so leniency here is the schema's defaulting rule, not
// silent data loss.
func parseCount(s string) int {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// truncate cuts s to at most max characters (runes, not bytes).
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
