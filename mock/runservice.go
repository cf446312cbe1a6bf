package mock

import (
	"context"

	"github.com/harvestkit/harvest"
)

var _ harvest.RunService = (*RunService)(nil)

// RunService is a mock implementation of harvest.RunService.
type RunService struct {
	CreateRunFn        func(ctx context.Context, run *harvest.Run, records []*harvest.Record) error
	FindRunByIDFn      func(ctx context.Context, id string) (*harvest.Run, error)
	FindRunsFn         func(ctx context.Context) ([]*harvest.Run, error)
	FindRecordsByRunFn func(ctx context.Context, runID string) ([]*harvest.Record, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *harvest.Run, records []*harvest.Record) error {
	return s.CreateRunFn(ctx, run, records)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*harvest.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context) ([]*harvest.Run, error) {
	return s.FindRunsFn(ctx)
}

func (s *RunService) FindRecordsByRun(ctx context.Context, runID string) ([]*harvest.Record, error) {
	return s.FindRecordsByRunFn(ctx, runID)
}
