package analyzer

import (
	"math"
	"sort"

	"github.com/fandomstats/kudoscope/models"
)

// Metrics selectable by TopWorks.
const (
	ByKudos = "kudos"
	ByHits  = "hits"
	ByWords = "words"
)

// Summary holds dataset-level statistics over one harvest.
type Summary struct {
	TotalWorks            int            `json:"total_works"`
	UniqueAuthors         int            `json:"unique_authors"`
	TotalWords            int            `json:"total_words"`
	AvgWords              float64        `json:"avg_words"`
	MedianWords           float64        `json:"median_words"`
	AvgKudos              float64        `json:"avg_kudos"`
	MedianKudos           float64        `json:"median_kudos"`
	AvgHits               float64        `json:"avg_hits"`
	WorksByFandom         map[string]int `json:"works_by_fandom"`
	RatingCounts          map[string]int `json:"rating_counts"`
	CategoryCounts        map[string]int `json:"category_counts"`
	WordsKudosCorrelation float64        `json:"words_kudos_correlation"`
}

// Summarize computes the Summary for a set of works. An empty set yields a
// zero summary with empty (non-nil) count maps.
func Summarize(works []models.Work) Summary {
	s := Summary{
		TotalWorks:     len(works),
		WorksByFandom:  make(map[string]int),
		RatingCounts:   make(map[string]int),
		CategoryCounts: make(map[string]int),
	}
	if len(works) == 0 {
		return s
	}

	authors := make(map[string]struct{}, len(works))
	words := make([]float64, 0, len(works))
	kudos := make([]float64, 0, len(works))
	var wordSum, kudosSum, hitSum int

	for _, w := range works {
		authors[w.Author] = struct{}{}
		s.WorksByFandom[w.FandomSearched]++
		s.RatingCounts[w.Rating]++
		s.CategoryCounts[w.Category]++
		wordSum += w.Words
		kudosSum += w.Kudos
		hitSum += w.Hits
		words = append(words, float64(w.Words))
		kudos = append(kudos, float64(w.Kudos))
	}

	n := float64(len(works))
	s.UniqueAuthors = len(authors)
	s.TotalWords = wordSum
	s.AvgWords = float64(wordSum) / n
	s.AvgKudos = float64(kudosSum) / n
	s.AvgHits = float64(hitSum) / n
	s.MedianWords = median(words)
	s.MedianKudos = median(kudos)
	s.WordsKudosCorrelation = pearson(words, kudos)
	return s
}

// ValidMetric reports whether by names a metric TopWorks can rank on.
func ValidMetric(by string) bool {
	return by == ByKudos || by == ByHits || by == ByWords
}

// TopWorks returns the n highest-ranked works by the chosen metric in
// descending order. Ties keep input order. An unknown metric ranks by kudos;
// n <= 0 or n past the end returns everything ranked.
func TopWorks(works []models.Work, by string, n int) []models.Work {
	key := func(w models.Work) int { return w.Kudos }
	switch by {
	case ByHits:
		key = func(w models.Work) int { return w.Hits }
	case ByWords:
		key = func(w models.Work) int { return w.Words }
	}

	ranked := make([]models.Work, len(works))
	copy(ranked, works)
	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i]) > key(ranked[j])
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// median sorts vals in place.
func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sort.Float64s(vals)
	n := len(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}

// pearson is the correlation coefficient of two equal-length series. Zero
// variance on either side yields 0 rather than NaN.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n == 0 {
		return 0
	}
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
