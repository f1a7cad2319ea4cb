package analyzer

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/fandomstats/kudoscope/models"
)

// Chart file names, one per analysis.
const (
	RatingChartName     = "rating_analysis.png"
	WordCountChartName  = "word_count_analysis.png"
	EngagementChartName = "engagement_analysis.png"
	CategoryChartName   = "category_analysis.png"
)

// wordBuckets bins word counts for the histogram.
var wordBuckets = []struct {
	label string
	max   int // exclusive upper bound, 0 = unbounded
}{
	{"<1k", 1000},
	{"1k-5k", 5000},
	{"5k-10k", 10000},
	{"10k-25k", 25000},
	{"25k-50k", 50000},
	{"50k+", 0},
}

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// RenderCharts writes the four analysis charts to dir as PNG files. A chart
// that fails to render is logged and skipped; only an unusable output
// directory is an error.
func RenderCharts(works []models.Work, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create chart dir %s: %w", dir, err)
	}
	if len(works) == 0 {
		slog.Warn("no works to chart", "dir", dir)
		return nil
	}

	s := Summarize(works)

	renderPNG(filepath.Join(dir, RatingChartName), ratingChart(s))
	renderPNG(filepath.Join(dir, WordCountChartName), wordCountChart(works))
	renderPNG(filepath.Join(dir, EngagementChartName), engagementChart(works))
	renderPNG(filepath.Join(dir, CategoryChartName), categoryChart(s))
	return nil
}

func renderPNG(path string, c renderable) {
	f, err := os.Create(path)
	if err != nil {
		slog.Warn("chart file not created", "path", path, "error", err)
		return
	}
	defer f.Close()

	if err := c.Render(chart.PNG, f); err != nil {
		slog.Warn("chart render failed", "path", path, "error", err)
		return
	}
	slog.Info("chart written", "path", path)
}

func ratingChart(s Summary) renderable {
	return chart.PieChart{
		Title:  "Rating Distribution",
		Width:  700,
		Height: 700,
		Values: countValues(s.RatingCounts),
	}
}

func wordCountChart(works []models.Work) renderable {
	counts := make([]int, len(wordBuckets))
	for _, w := range works {
		for i, b := range wordBuckets {
			if b.max == 0 || w.Words < b.max {
				counts[i]++
				break
			}
		}
	}
	bars := make([]chart.Value, len(wordBuckets))
	for i, b := range wordBuckets {
		bars[i] = chart.Value{Label: b.label, Value: float64(counts[i])}
	}
	return chart.BarChart{
		Title:      "Word Count Distribution",
		Width:      900,
		Height:     500,
		BarWidth:   80,
		Bars:       bars,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
	}
}

func engagementChart(works []models.Work) renderable {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, w := range works {
		sums[w.FandomSearched] += w.Kudos
		counts[w.FandomSearched]++
	}

	type fandomAvg struct {
		name string
		avg  float64
	}
	list := make([]fandomAvg, 0, len(sums))
	for name, sum := range sums {
		list = append(list, fandomAvg{name, float64(sum) / float64(counts[name])})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].avg != list[j].avg {
			return list[i].avg > list[j].avg
		}
		return list[i].name < list[j].name
	})

	bars := make([]chart.Value, 0, len(list))
	for _, fa := range list {
		bars = append(bars, chart.Value{Label: fa.name, Value: fa.avg})
	}
	return chart.BarChart{
		Title:      "Average Kudos by Fandom",
		Width:      900,
		Height:     500,
		BarWidth:   80,
		Bars:       bars,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
	}
}

func categoryChart(s Summary) renderable {
	return chart.BarChart{
		Title:      "Category Distribution",
		Width:      900,
		Height:     500,
		BarWidth:   80,
		Bars:       countValues(s.CategoryCounts),
		Background: chart.Style{Padding: chart.Box{Top: 40}},
	}
}

// countValues turns a count map into chart values ordered by descending
// count, then name, so charts come out the same on every run.
func countValues(counts map[string]int) []chart.Value {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	vals := make([]chart.Value, 0, len(keys))
	for _, k := range keys {
		vals = append(vals, chart.Value{Label: k, Value: float64(counts[k])})
	}
	return vals
}
