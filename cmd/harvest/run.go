package main

import (
	"fmt"
	"time"

	"github.com/harvestkit/harvest"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	if deps.Harvester == nil {
		return harvest.Errorf(harvest.EINTERNAL, "harvester not configured")
	}

	started := time.Now()
	result, err := deps.Harvester.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}

	run := &harvest.Run{
		Profile:    deps.Profile.Name,
		Schema:     deps.Profile.Schema,
		StartedAt:  started,
		FinishedAt: time.Now(),
		Pages:      result.Pages,
		Accepted:   len(result.Records),
		Incomplete: result.Incomplete,
		Duplicates: result.Duplicates,
		StopReason: result.StopReason,
	}
	if err := deps.Runs.CreateRun(deps.Ctx, run, result.Records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Run %s finished (%s)\n", run.ID, run.StopReason)
	fmt.Fprintf(deps.Stdout, "  %d records from %d pages (%d incomplete, %d duplicates discarded)\n",
		run.Accepted, run.Pages, run.Incomplete, run.Duplicates)
	if run.Accepted > 0 {
		fmt.Fprintf(deps.Stdout, "  Saved to %s\n", c.Out)
	} else {
		fmt.Fprintln(deps.Stdout, "  No records harvested, output not written")
	}

	return nil
}
