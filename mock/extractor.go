package mock

import (
	"context"

	"github.com/harvestkit/harvest"
)

var _ harvest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of harvest.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, req harvest.ExtractionRequest) (string, error)
}

func (e *Extractor) Extract(ctx context.Context, req harvest.ExtractionRequest) (string, error) {
	return e.ExtractFn(ctx, req)
}
