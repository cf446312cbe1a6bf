package main

import (
	"fmt"

	"github.com/harvestkit/harvest"
	"github.com/harvestkit/harvest/csv"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.RunID)
	if err != nil {
		if harvest.ErrorCode(err) == harvest.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "run %q not found. Run 'harvest runs' to list runs.\n", c.RunID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		}
		return err
	}

	records, err := deps.Runs.FindRecordsByRun(deps.Ctx, run.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}

	if c.Out == "" {
		return csv.Encode(deps.Stdout, run.Schema, records)
	}

	if err := csv.NewWriter(c.Out).WriteRecords(deps.Ctx, run.Schema, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", harvest.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Exported %d records to %s\n", len(records), c.Out)

	return nil
}
