package main

import (
	"fmt"

	"github.com/harvestkit/harvest"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
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

	if len(records) == 0 {
		fmt.Fprintf(deps.Stdout, "Run %s has no records.\n", run.ID)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Records for run %s (%d total)\n", run.ID, len(records))
	for i, rec := range records {
		fmt.Fprintf(deps.Stdout, "%d. %s (page %d)\n", i+1, rec.Identity(run.Schema), rec.Page)
		for _, name := range run.Schema.FieldNames() {
			if name == run.Schema.Identity {
				continue
			}
			if v := rec.Get(name); v != "" {
				fmt.Fprintf(deps.Stdout, "   %s: %s\n", name, v)
			}
		}
	}

	return nil
}
