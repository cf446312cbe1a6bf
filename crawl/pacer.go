package crawl

import (
	"context"
	"time"

	"github.com/harvestkit/harvest"
	"golang.org/x/time/rate"
)

var _ harvest.Pacer = (*IntervalPacer)(nil)

// IntervalPacer enforces a fixed interval between page fetches using a
// token bucket with a burst of 1. The first wait is immediate; every
// subsequent wait blocks for the configured interval.
type IntervalPacer struct {
	limiter *rate.Limiter
}

// NewIntervalPacer creates an IntervalPacer with the given interval.
func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	return &IntervalPacer{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Wait blocks until the interval since the previous wait has elapsed.
// Returns an error if the context is canceled before then.
func (p *IntervalPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
