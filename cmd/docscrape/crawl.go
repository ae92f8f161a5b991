package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/matthewmetros/docscrape"
	"github.com/matthewmetros/docscrape/crawl"
	"github.com/matthewmetros/docscrape/fs"
	"github.com/matthewmetros/docscrape/sqlite"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	cfg, err := c.config()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscrape.ErrorMessage(err))
		return err
	}

	dbStore, err := sqlite.NewPageStore(deps.Ctx, deps.DB, cfg.Target.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to start crawl transaction: %w", err)
	}
	store := crawl.MultiStore{dbStore}
	if !c.NoFiles {
		store = append(store, fs.NewFileStore(filepath.Dir(c.Out), filepath.Base(c.Out)))
	}
	deps.Crawler.Store = store

	session, err := deps.Crawler.Start(deps.Ctx, cfg, func(ev crawl.ProgressEvent) {
		switch ev.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Crawling %d pages from %s\n", ev.Total, cfg.Target.BaseURL)
		case crawl.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s\n", ev.Completed, ev.Total, ev.URL)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", ev.Completed, ev.Total, ev.URL, ev.Error)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscrape.ErrorMessage(err))
		return err
	}

	// First interrupt stops the crawl cooperatively; in-flight pages
	// finish and partial results are committed.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(deps.Stderr, "Stopping crawl, waiting for in-flight pages...")
			session.Cancel()
		case <-session.Done():
		}
	}()

	<-session.Done()
	if err := session.Err(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscrape.ErrorMessage(err))
		return err
	}

	var failed int
	results := session.Results()
	for _, rec := range results {
		if rec.Status == docscrape.PageFailed {
			failed++
		}
	}

	fmt.Fprintf(deps.Stdout, "Crawled %d pages (%d failed) from %s\n", len(results), failed, cfg.Target.BaseURL)
	if !c.NoFiles {
		fmt.Fprintf(deps.Stdout, "Files written to %s\n", c.Out)
	}
	return nil
}

// config builds a validated crawl configuration from the command flags.
func (c *CrawlCmd) config() (docscrape.Config, error) {
	timeout, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return docscrape.Config{}, docscrape.Errorf(docscrape.EINVALID, "invalid timeout %q", c.Timeout)
	}

	formats := make([]docscrape.Format, 0, len(c.Formats))
	for _, name := range c.Formats {
		f, err := docscrape.ParseFormat(name)
		if err != nil {
			return docscrape.Config{}, err
		}
		formats = append(formats, f)
	}

	cfg := docscrape.Config{
		Target: docscrape.CrawlTarget{
			BaseURL:   c.URL,
			Language:  c.Language,
			BasePaths: c.BasePaths,
			MaxDepth:  c.Depth,
		},
		Formats: formats,
		Workers: c.Workers,
		Timeout: timeout,
		Retries: c.Retries,
	}
	if err := cfg.Validate(); err != nil {
		return docscrape.Config{}, err
	}
	return cfg, nil
}
