package main

import (
	"context"
	"io"
	"time"

	"github.com/harvestkit/harvest"
	"github.com/harvestkit/harvest/crawl"
	"github.com/harvestkit/harvest/sqlite"
)

// Harvester runs the pagination pipeline. Satisfied by *crawl.Harvester.
type Harvester interface {
	Run(ctx context.Context) (*crawl.Result, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	DB     *sqlite.DB
	Runs   harvest.RunService

	// Harvester and Profile are wired for the run command only.
	Harvester Harvester
	Profile   harvest.Profile
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run     RunCmd     `cmd:"" help:"Harvest records from a paginated source"`
	Runs    RunsCmd    `cmd:"" help:"List past harvest runs"`
	Records RecordsCmd `cmd:"" help:"List records accepted by a run"`
	Export  ExportCmd  `cmd:"" help:"Export a run's records as CSV"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	Profile         string        `short:"p" help:"Path to a profile JSON file (built-in news profile when omitted)"`
	Out             string        `short:"o" default:"harvest.csv" help:"CSV output path"`
	Engine          string        `default:"browser" enum:"browser,http" help:"Fetch engine (browser or http)"`
	MaxPages        int           `default:"10" help:"Page bound (0 for unbounded)"`
	Delay           time.Duration `default:"2s" help:"Pause between page fetches"`
	ContinueOnEmpty bool          `help:"Continue past pages that yield no candidates"`
	SavePages       string        `help:"Directory to save raw fetched pages"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct{}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	RunID string `arg:"" help:"Run ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	RunID string `arg:"" help:"Run ID"`
	Out   string `short:"o" help:"CSV output path (stdout when omitted)"`
}
