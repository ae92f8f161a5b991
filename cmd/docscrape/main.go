package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/matthewmetros/docscrape"
	"github.com/matthewmetros/docscrape/crawl"
	"github.com/matthewmetros/docscrape/goquery"
	"github.com/matthewmetros/docscrape/htmltomarkdown"
	dshttp "github.com/matthewmetros/docscrape/http"
	"github.com/matthewmetros/docscrape/readability"
	dsslog "github.com/matthewmetros/docscrape/slog"
	"github.com/matthewmetros/docscrape/sqlite"
	"github.com/matthewmetros/docscrape/trafilatura"
)

func main() {
	ctx := context.Background()

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

	// SQLite database backing the page index.
	DB *sqlite.DB
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
		kong.Name("docscrape"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docscrape --help' to see available commands")
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

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSCRAPE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Pages = sqlite.NewPageService(m.DB)

	if cmd == "crawl" {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

		registry := dsslog.NewLoggingRegistry(goquery.NewDefaultRegistry(), goquery.NewDetector(), logger)
		// The per-request timeout comes from the crawl config; the client
		// cap only needs to sit above the configurable range.
		fetcher := dsslog.NewLoggingFetcher(dshttp.NewFetcher(dshttp.WithTimeout(docscrape.MaxTimeout)), logger)
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Sitemaps:          dsslog.NewLoggingSitemapService(dshttp.NewSitemapService(nil), logger),
			Fetcher:           fetcher,
			Extractor:         trafilatura.NewExtractor(),
			FallbackExtractor: readability.NewExtractor(),
			Converter:         htmltomarkdown.NewConverter(),
			LinkSelectors:     registry,
			RateLimiter:       crawl.NewRateLimiter(2.0, 2),
			Logger:            logger,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("DOCSCRAPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docscrape.db"
	}
	dir := filepath.Join(home, ".docscrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docscrape.db")
}
