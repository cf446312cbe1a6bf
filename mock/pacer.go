package mock

import (
	"context"

	"github.com/harvestkit/harvest"
)

var _ harvest.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of harvest.Pacer.
type Pacer struct {
	WaitFn func(ctx context.Context) error
}

func (p *Pacer) Wait(ctx context.Context) error {
	if p.WaitFn == nil {
		return nil
	}
	return p.WaitFn(ctx)
}
