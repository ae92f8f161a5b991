// Package crawl coordinates documentation crawls: URL discovery via
// sitemaps or recursive link-following, then concurrent content
// extraction into page records.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matthewmetros/docscrape"
	dsgoquery "github.com/matthewmetros/docscrape/goquery"
)

// Crawler runs crawls against documentation sites. Sitemaps, Fetcher,
// Extractor, Converter and LinkSelectors are required; the rest are
// optional.
type Crawler struct {
	Sitemaps          docscrape.SitemapService
	Fetcher           docscrape.Fetcher
	Extractor         docscrape.Extractor
	FallbackExtractor docscrape.Extractor
	Converter         docscrape.Converter
	LinkSelectors     docscrape.LinkSelectorRegistry
	RateLimiter       docscrape.DomainLimiter
	Store             docscrape.PageStore
	Logger            *slog.Logger

	// RetryDelays overrides the backoff schedule derived from
	// Config.Retries. Used by tests to avoid real sleeps.
	RetryDelays []time.Duration
}

// Start validates cfg and begins a crawl in the background. It returns
// a Session immediately; callers observe completion via Session.Done
// and inspect the outcome via Session.Err and Session.Results. No
// network traffic happens before validation passes.
func (c *Crawler) Start(ctx context.Context, cfg docscrape.Config, progress ProgressFunc) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := newSession(cfg.Target)
	go c.run(ctx, s, cfg, progress)
	return s, nil
}

func (c *Crawler) run(ctx context.Context, s *Session, cfg docscrape.Config, progress ProgressFunc) {
	s.setStatus(StatusDiscovering)

	cache, err := c.discover(ctx, s, cfg)
	if err != nil {
		c.finish(s, StatusFailed, err, progress)
		return
	}
	if s.Canceled() || ctx.Err() != nil {
		c.finish(s, StatusStopped, nil, progress)
		return
	}

	s.setStatus(StatusExtracting)
	urls := s.Discovered()
	emit(progress, ProgressEvent{Type: ProgressStarted, Total: len(urls)})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, url := range urls {
		if s.Canceled() {
			break
		}
		g.Go(func() error {
			if s.Canceled() || gctx.Err() != nil {
				return nil
			}
			rec := c.processURL(gctx, url, cache[url], cfg)
			done := s.recordResult(rec)
			if c.Store != nil {
				if err := c.Store.Save(gctx, rec); err != nil && c.Logger != nil {
					c.Logger.Warn("failed to save page record", "url", url, "error", err)
				}
			}
			ev := ProgressEvent{Type: ProgressCompleted, Completed: done, Total: len(urls), URL: url}
			if rec.Status == docscrape.PageFailed {
				ev.Type = ProgressFailed
				ev.Error = rec.ErrorMsg
			}
			emit(progress, ev)
			return nil
		})
	}
	_ = g.Wait()

	final := StatusCompleted
	if s.Canceled() || ctx.Err() != nil {
		final = StatusStopped
	}
	c.finish(s, final, nil, progress)
}

// finish settles the terminal state of the session and the store.
// Completed and stopped crawls commit whatever was written; failed
// crawls abort.
func (c *Crawler) finish(s *Session, status Status, err error, progress ProgressFunc) {
	if c.Store != nil {
		if status == StatusFailed {
			if aerr := c.Store.Abort(); aerr != nil && c.Logger != nil {
				c.Logger.Warn("failed to abort page store", "error", aerr)
			}
		} else {
			if cerr := c.Store.Commit(); cerr != nil && c.Logger != nil {
				c.Logger.Warn("failed to commit page store", "error", cerr)
			}
		}
	}
	s.finish(status, err)
	done, total, _ := s.Progress()
	ev := ProgressEvent{Type: ProgressFinished, Completed: done, Total: total}
	if err != nil {
		ev.Error = err.Error()
	}
	emit(progress, ev)
}

// processURL turns a single discovered URL into a page record. Fetch
// and extraction failures are captured in the record rather than
// returned, so one bad page never aborts the crawl.
func (c *Crawler) processURL(ctx context.Context, url, cachedHTML string, cfg docscrape.Config) *docscrape.PageRecord {
	rec := &docscrape.PageRecord{
		ID:        uuid.New().String(),
		URL:       url,
		Formats:   make(map[docscrape.Format]string),
		FetchedAt: time.Now().UTC(),
		Status:    docscrape.PageOK,
	}

	html := cachedHTML
	if html == "" {
		var err error
		html, err = c.fetchPage(ctx, url, cfg)
		if err != nil {
			return failRecord(rec, err)
		}
	}
	rec.ContentHash = ComputeHash(html)
	rec.Title = dsgoquery.Title(html)

	res, err := c.extract(html)
	if err != nil {
		if cfg.HasFormat(docscrape.FormatMarkdown) || cfg.HasFormat(docscrape.FormatText) {
			if cfg.HasFormat(docscrape.FormatHTML) {
				rec.Formats[docscrape.FormatHTML] = html
			}
			return failRecord(rec, err)
		}
		res = &docscrape.ExtractResult{}
	}

	if res.Title != "" {
		rec.Title = res.Title
	}

	if cfg.HasFormat(docscrape.FormatHTML) {
		rec.Formats[docscrape.FormatHTML] = html
	}
	if cfg.HasFormat(docscrape.FormatText) {
		rec.Formats[docscrape.FormatText] = res.ContentText
	}
	if cfg.HasFormat(docscrape.FormatMarkdown) {
		md, err := c.Converter.Convert(res.ContentHTML)
		if err != nil {
			return failRecord(rec, err)
		}
		rec.Formats[docscrape.FormatMarkdown] = md
	}
	return rec
}

// extract runs the primary extractor and falls back to the secondary
// one when the primary fails or produces an empty result.
func (c *Crawler) extract(html string) (*docscrape.ExtractResult, error) {
	res, err := c.Extractor.Extract(html)
	if err == nil && (res.ContentHTML != "" || res.ContentText != "") {
		return res, nil
	}
	if c.FallbackExtractor == nil {
		if err != nil {
			return nil, err
		}
		return res, nil
	}
	fres, ferr := c.FallbackExtractor.Extract(html)
	if ferr != nil {
		if err != nil {
			return nil, err
		}
		return res, nil
	}
	return fres, nil
}

// fetchPage fetches a URL with the per-request timeout, domain rate
// limiting, and retry schedule configured for the crawl.
func (c *Crawler) fetchPage(ctx context.Context, url string, cfg docscrape.Config) (string, error) {
	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, url); err != nil {
			return "", err
		}
	}
	delays := c.RetryDelays
	if delays == nil {
		delays = BackoffDelays(cfg.Retries)
	}
	return FetchWithRetryDelays(ctx, url, func(fctx context.Context) (string, error) {
		fctx, cancel := context.WithTimeout(fctx, cfg.Timeout)
		defer cancel()
		return c.Fetcher.Fetch(fctx, url)
	}, c.Logger, delays)
}

func failRecord(rec *docscrape.PageRecord, err error) *docscrape.PageRecord {
	rec.Status = docscrape.PageFailed
	rec.ErrorCode = docscrape.ErrorCode(err)
	rec.ErrorMsg = docscrape.ErrorMessage(err)
	return rec
}

// ComputeHash returns a stable content hash used for change detection
// across repeated crawls of the same page.
func ComputeHash(content string) string {
	return fmt.Sprintf("xxh64:%016x", xxhash.Sum64String(content))
}
