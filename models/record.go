package models

import (
	"fmt"
	"strconv"
)

// Work is one harvested archive work, normalized per the dataset schema.
// A Work is constructed once by the extractor, accumulated unchanged by the
// search driver, and serialized as-is by the sinks.
type Work struct {
	// FandomSearched is the search term that produced this record.
	// It is set by the search driver, never by the extractor.
	FandomSearched string `json:"fandom_searched"`

	// Title and WorkID identify the work. Both are non-empty for every
	// emitted record; an item without them is skipped at extraction time.
	Title  string `json:"title"`
	WorkID string `json:"work_id"`

	Author   string `json:"author"`
	Rating   string `json:"rating"`
	Warnings string `json:"warnings"`
	Category string `json:"category"`

	// Fandoms holds the work's own fandom tags joined with ", ".
	// Falls back to the search term when the blurb carries none.
	Fandoms string `json:"fandoms"`

	// Tags, Relationships and Characters are joined lists ("a, b, c"),
	// capped at 10 / 5 / 10 entries in source order.
	Tags          string `json:"tags"`
	Relationships string `json:"relationships"`
	Characters    string `json:"characters"`

	Language string `json:"language"`

	// Words, Kudos, Bookmarks and Hits are never negative. Upstream omits
	// stat markup for works with zero of a stat, so absent parses to 0.
	Words     int    `json:"words"`
	Chapters  string `json:"chapters"`
	Kudos     int    `json:"kudos"`
	Bookmarks int    `json:"bookmarks"`
	Hits      int    `json:"hits"`

	// Summary is whitespace-normalized text, at most 200 characters.
	Summary string `json:"summary"`
}

// workColumns is the dataset schema: CSV header names in their fixed order,
// identical to the JSON field names. Downstream consumers (the analyzer, the
// dataset API) depend on this order; changing it is a breaking change.
var workColumns = []string{
	"fandom_searched",
	"title",
	"work_id",
	"author",
	"rating",
	"warnings",
	"category",
	"fandoms",
	"tags",
	"relationships",
	"characters",
	"language",
	"words",
	"chapters",
	"kudos",
	"bookmarks",
	"hits",
	"summary",
}

// Columns returns the CSV header in the fixed schema order.
func Columns() []string {
	return workColumns
}

// Record renders the work as one CSV row in Columns() order.
func (w Work) Record() []string {
	return []string{
		w.FandomSearched,
		w.Title,
		w.WorkID,
		w.Author,
		w.Rating,
		w.Warnings,
		w.Category,
		w.Fandoms,
		w.Tags,
		w.Relationships,
		w.Characters,
		w.Language,
		strconv.Itoa(w.Words),
		w.Chapters,
		strconv.Itoa(w.Kudos),
		strconv.Itoa(w.Bookmarks),
		strconv.Itoa(w.Hits),
		w.Summary,
	}
}

// FromRecord parses one CSV row (in Columns() order) back into a Work.
// Numeric cells must hold base-10 integers as written by Record.
func FromRecord(row []string) (Work, error) {
	if len(row) != len(workColumns) {
		return Work{}, fmt.Errorf("record has %d fields, schema has %d", len(row), len(workColumns))
	}

	words, err := strconv.Atoi(row[12])
	if err != nil {
		return Work{}, fmt.Errorf("parse words %q: %w", row[12], err)
	}
	kudos, err := strconv.Atoi(row[14])
	if err != nil {
		return Work{}, fmt.Errorf("parse kudos %q: %w", row[14], err)
	}
	bookmarks, err := strconv.Atoi(row[15])
	if err != nil {
		return Work{}, fmt.Errorf("parse bookmarks %q: %w", row[15], err)
	}
	hits, err := strconv.Atoi(row[16])
	if err != nil {
		return Work{}, fmt.Errorf("parse hits %q: %w", row[16], err)
	}

	return Work{
		FandomSearched: row[0],
		Title:          row[1],
		WorkID:         row[2],
		Author:         row[3],
		Rating:         row[4],
		Warnings:       row[5],
		Category:       row[6],
		Fandoms:        row[7],
		Tags:           row[8],
		Relationships:  row[9],
		Characters:     row[10],
		Language:       row[11],
		Words:          words,
		Chapters:       row[13],
		Kudos:          kudos,
		Bookmarks:      bookmarks,
		Hits:           hits,
		Summary:        row[17],
	}, nil
}
