package harvest

import (
	"context"
	"time"
)

// StopReason identifies why pagination ended. All reasons stop the loop;
// they are distinguished for reporting only.
type StopReason string

const (
	// StopNoResults means the source signaled the natural end of the listing.
	StopNoResults StopReason = "no_results"

	// StopFetchFailure means a fetch or extraction call failed.
	StopFetchFailure StopReason = "fetch_failure"

	// StopParseFailure means the extraction payload was not a list of records.
	StopParseFailure StopReason = "parse_failure"

	// StopEmptyPayload means extraction succeeded but yielded no candidates.
	StopEmptyPayload StopReason = "empty_payload"

	// StopMaxPages means the configured page bound was reached.
	StopMaxPages StopReason = "max_pages"
)

// Run records the outcome of one harvest run.
type Run struct {
	ID         string     `json:"id"`
	Profile    string     `json:"profile"`
	Schema     Schema     `json:"schema"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt time.Time  `json:"finishedAt"`
	Pages      int        `json:"pages"`
	Accepted   int        `json:"accepted"`
	Incomplete int        `json:"incomplete"`
	Duplicates int        `json:"duplicates"`
	StopReason StopReason `json:"stopReason"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Profile == "" {
		return Errorf(EINVALID, "run profile required")
	}
	return r.Schema.Validate()
}

// RunService persists completed runs and their accepted records.
// The in-run pipeline never reads this store; it exists so past harvests
// can be listed, inspected, and re-exported.
type RunService interface {
	// CreateRun stores a completed run together with its records.
	CreateRun(ctx context.Context, run *Run, records []*Record) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves all stored runs, most recent first.
	FindRuns(ctx context.Context) ([]*Run, error)

	// FindRecordsByRun retrieves a run's records in acceptance order.
	FindRecordsByRun(ctx context.Context, runID string) ([]*Record, error)
}
