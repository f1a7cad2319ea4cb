package archive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fandomstats/kudoscope/config"
	"github.com/fandomstats/kudoscope/models"
)

// searchPath is the one archive endpoint this client speaks to.
const searchPath = "/works/search"

// maxBody caps how much of a results page we read (5 MiB).
const maxBody = 5 << 20

// Client fetches archive search result pages. It identifies itself with a
// fixed research user agent and paces every request through its limiter.
type Client struct {
	http      *http.Client
	limiter   Limiter
	baseURL   string
	userAgent string
}

// NewClient builds a client from archive settings, with a production rate
// limiter derived from cfg.RateLimit.
func NewClient(cfg config.ArchiveConfig) *Client {
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   NewLimiter(cfg.RateLimit),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
	}
}

// SetLimiter swaps the dispatch limiter. Tests use this to run without
// waiting, and multi-client setups use it to share one rate clock.
func (c *Client) SetLimiter(l Limiter) {
	c.limiter = l
}

// SearchPage fetches a single results page for a search term, sorted by
// kudos count. It waits for its rate-limit turn before dispatching, and the
// turn is consumed whether or not the fetch succeeds. Any failure comes back
// as a *models.FetchError; there is no retry at this layer.
func (c *Client) SearchPage(ctx context.Context, fandom string, page int) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &models.FetchError{Fandom: fandom, Page: page, Err: err}
	}

	q := url.Values{}
	q.Set("work_search[query]", fandom)
	q.Set("work_search[sort_column]", "kudos_count")
	q.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, &models.FetchError{Fandom: fandom, Page: page, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &models.FetchError{Fandom: fandom, Page: page, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &models.FetchError{Fandom: fandom, Page: page, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, &models.FetchError{Fandom: fandom, Page: page, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}
