package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/harvestkit/harvest"
	"github.com/harvestkit/harvest/bloom"
	"github.com/harvestkit/harvest/crawl"
	"github.com/harvestkit/harvest/csv"
	"github.com/harvestkit/harvest/fs"
	"github.com/harvestkit/harvest/gemini"
	"github.com/harvestkit/harvest/goquery"
	harvesthttp "github.com/harvestkit/harvest/http"
	"github.com/harvestkit/harvest/htmltomarkdown"
	"github.com/harvestkit/harvest/rod"
	harvestslog "github.com/harvestkit/harvest/slog"
	"github.com/harvestkit/harvest/sqlite"
	"github.com/harvestkit/harvest/trafilatura"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	// Environment overrides from a local .env file, if present.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	RunService harvest.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("harvest"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'harvest --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set HARVEST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RunService = sqlite.NewRunService(m.DB)
	deps.DB = m.DB
	deps.Runs = m.RunService

	if cmd == "run" {
		profile := DefaultProfile()
		if cli.Run.Profile != "" {
			profile, err = LoadProfile(cli.Run.Profile)
			if err != nil {
				return fmt.Errorf("failed to load profile %q: %w", cli.Run.Profile, err)
			}
		}
		deps.Profile = profile

		logger := slog.New(slog.NewTextHandler(stderr, nil))

		fetcher, err := newFetcher(cli.Run.Engine)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for the browser engine")
			return fmt.Errorf("failed to start fetch engine: %w", err)
		}
		defer fetcher.Close()

		if cli.Run.SavePages != "" {
			fetcher = fs.NewArchivingFetcher(fetcher, cli.Run.SavePages)
		}

		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		var selector harvest.ContentSelector
		if profile.Selector != "" {
			selector = goquery.NewSelector(profile.Selector)
		} else {
			selector = trafilatura.NewSelector()
		}

		deps.Harvester = &crawl.Harvester{
			Fetcher:         harvestslog.NewLoggingFetcher(fetcher, logger),
			Selector:        selector,
			Converter:       htmltomarkdown.NewConverter(),
			Extractor:       harvestslog.NewLoggingExtractor(gemini.NewExtractor(client, os.Getenv("HARVEST_MODEL")), logger),
			Sink:            csv.NewWriter(cli.Run.Out),
			Seen:            bloom.NewIndex(),
			Pacer:           crawl.NewIntervalPacer(cli.Run.Delay),
			Logger:          logger,
			Profile:         profile,
			MaxPages:        cli.Run.MaxPages,
			ContinueOnEmpty: cli.Run.ContinueOnEmpty,
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher selects the fetch engine. The browser engine renders JavaScript;
// the http engine is enough for static listings.
func newFetcher(engine string) (harvest.Fetcher, error) {
	if engine == "http" {
		return harvesthttp.NewFetcher(), nil
	}
	return rod.NewFetcher()
}

func defaultDBPath() string {
	if path := os.Getenv("HARVEST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "harvest.db"
	}
	dir := filepath.Join(home, ".harvest")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "harvest.db")
}
