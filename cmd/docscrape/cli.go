package main

import (
	"context"
	"io"

	"github.com/matthewmetros/docscrape"
	"github.com/matthewmetros/docscrape/crawl"
	"github.com/matthewmetros/docscrape/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Pages   docscrape.PageService
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl CrawlCmd `cmd:"" help:"Crawl a documentation site"`
	Pages PagesCmd `cmd:"" help:"List previously crawled pages"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL       string   `arg:"" help:"Documentation base URL"`
	Language  string   `short:"l" default:"any" help:"Language filter (e.g. en, fr, or \"any\")"`
	BasePaths []string `short:"p" name:"base-path" help:"Restrict crawl to path prefixes (repeatable)"`
	Depth     int      `short:"d" default:"3" help:"Maximum link-following depth"`
	Workers   int      `short:"c" default:"5" help:"Extraction worker count (1-20)"`
	Timeout   string   `default:"10s" help:"Per-request timeout (5s-60s)"`
	Retries   int      `default:"3" help:"Retries for transient fetch failures (0-10)"`
	Formats   []string `short:"f" name:"format" default:"markdown" help:"Output formats: markdown, html, text (repeatable)"`
	Out       string   `short:"o" default:"docs" help:"Output directory for page files"`
	NoFiles   bool     `help:"Skip writing files, record pages only in the database"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	URL    string `help:"Filter by exact page URL"`
	Status string `help:"Filter by status (ok or error)"`
	Limit  int    `default:"50" help:"Maximum number of pages to list"`
	Offset int    `help:"Number of pages to skip"`
	Full   bool   `help:"Show full page content"`
}
