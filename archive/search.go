package archive

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/fandomstats/kudoscope/blurb"
	"github.com/fandomstats/kudoscope/models"
)

// SearchFandom harvests up to maxPages result pages for one search term and
// returns every work it managed to extract. The first fetch failure stops the
// term and whatever was collected so far is returned; a page that fetched but
// would not parse is skipped and the walk goes on. Request pacing lives in
// the client's limiter, the driver itself never sleeps.
func (c *Client) SearchFandom(ctx context.Context, fandom string, maxPages int) []models.Work {
	var works []models.Work

	slog.Info("searching fandom", "term", fandom, "max_pages", maxPages)

	for page := 1; page <= maxPages; page++ {
		body, err := c.SearchPage(ctx, fandom, page)
		if err != nil {
			slog.Error("page fetch failed, stopping term",
				"term", fandom,
				"page", page,
				"collected", len(works),
				"error", err)
			break
		}

		items, err := blurb.Parse(bytes.NewReader(body))
		if err != nil {
			slog.Warn("results page did not parse, skipping page",
				"term", fandom, "page", page, "error", err)
			continue
		}

		kept := 0
		for _, item := range items {
			w, ok := blurb.Extract(item, fandom)
			if !ok {
				continue
			}
			w.FandomSearched = fandom
			works = append(works, w)
			kept++
		}

		slog.Info("results page harvested",
			"term", fandom, "page", page, "items", len(items), "kept", kept)
	}

	slog.Info("fandom search done", "term", fandom, "works", len(works))
	return works
}
