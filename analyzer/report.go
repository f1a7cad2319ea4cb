package analyzer

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/fandomstats/kudoscope/models"
)

// titleMaxLen keeps leaderboard rows on one line.
const titleMaxLen = 50

var metricLabels = map[string]string{
	ByKudos: "Kudos",
	ByHits:  "Hits",
	ByWords: "Words",
}

// WriteReport renders the dataset summary, the per-fandom breakdown and the
// top-works leaderboards as text tables. works should be the same set the
// summary was computed from.
func WriteReport(w io.Writer, s Summary, works []models.Work, topN int) {
	writeSummaryTable(w, s)
	writeFandomTable(w, s)
	for _, by := range []string{ByKudos, ByHits, ByWords} {
		writeTopTable(w, works, by, topN)
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func writeSummaryTable(w io.Writer, s Summary) {
	t := newTable(w)
	t.SetTitle("Dataset Summary")
	t.AppendRows([]table.Row{
		{"Total works", s.TotalWorks},
		{"Unique authors", s.UniqueAuthors},
		{"Total words", s.TotalWords},
		{"Average words", fmt.Sprintf("%.0f", s.AvgWords)},
		{"Median words", fmt.Sprintf("%.0f", s.MedianWords)},
		{"Average kudos", fmt.Sprintf("%.1f", s.AvgKudos)},
		{"Median kudos", fmt.Sprintf("%.1f", s.MedianKudos)},
		{"Average hits", fmt.Sprintf("%.0f", s.AvgHits)},
		{"Words/kudos correlation", fmt.Sprintf("%.3f", s.WordsKudosCorrelation)},
	})
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
	fmt.Fprintln(w)
}

func writeFandomTable(w io.Writer, s Summary) {
	if len(s.WorksByFandom) == 0 {
		return
	}
	type fandomCount struct {
		name  string
		count int
	}
	counts := make([]fandomCount, 0, len(s.WorksByFandom))
	for name, count := range s.WorksByFandom {
		counts = append(counts, fandomCount{name, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].name < counts[j].name
	})

	t := newTable(w)
	t.SetTitle("Works by Fandom")
	t.AppendHeader(table.Row{"Fandom", "Works"})
	for _, fc := range counts {
		t.AppendRow(table.Row{fc.name, fc.count})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
	fmt.Fprintln(w)
}

func writeTopTable(w io.Writer, works []models.Work, by string, n int) {
	top := TopWorks(works, by, n)
	if len(top) == 0 {
		return
	}

	t := newTable(w)
	t.SetTitle("Top %d by %s", len(top), metricLabels[by])
	t.AppendHeader(table.Row{"#", metricLabels[by], "Title", "Author", "Fandom"})
	for i, work := range top {
		v := work.Kudos
		switch by {
		case ByHits:
			v = work.Hits
		case ByWords:
			v = work.Words
		}
		t.AppendRow(table.Row{i + 1, v, truncateTitle(work.Title), work.Author, work.FandomSearched})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	t.Render()
	fmt.Fprintln(w)
}

func truncateTitle(s string) string {
	runes := []rune(s)
	if len(runes) <= titleMaxLen {
		return s
	}
	return string(runes[:titleMaxLen])
}
