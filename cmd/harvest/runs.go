package main

import (
	"fmt"

	"github.com/harvestkit/harvest"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'harvest run' to start one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d records  %d pages  %s\n",
			r.ID, r.Profile, r.StartedAt.Format("2006-01-02 15:04"), r.Accepted, r.Pages, r.StopReason)
	}

	return nil
}
