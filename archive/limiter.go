package archive

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter gates outbound request dispatch. Wait blocks until the caller may
// issue its next request, or returns early when the context is done.
//
// One limiter instance is the shared rate clock for everything that talks to
// the archive; all fetch paths in a process must go through the same one.
type Limiter interface {
	Wait(ctx context.Context) error
}

// NewLimiter returns the production limiter: a token bucket holding a single
// token refilled once per interval. The first Wait returns immediately and
// consecutive Waits return at least interval apart. The token is taken at
// dispatch, so a failed fetch still consumes a full interval.
func NewLimiter(interval time.Duration) Limiter {
	return rate.NewLimiter(rate.Every(interval), 1)
}

// Unlimited returns a limiter that never blocks, for tests and offline use.
func Unlimited() Limiter {
	return rate.NewLimiter(rate.Inf, 1)
}
