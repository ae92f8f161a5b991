package crawl

import (
	"context"

	"github.com/matthewmetros/docscrape"
)

// maxCrawlURLs bounds the discovered set so a pathological site cannot
// grow the crawl without limit.
const maxCrawlURLs = 1000

// discover populates the session's discovered set. It tries sitemaps
// first and falls back to recursive link-following from the base URL.
// The returned map caches HTML fetched during link-following, keyed by
// canonical URL, so the extraction phase can skip refetching.
func (c *Crawler) discover(ctx context.Context, s *Session, cfg docscrape.Config) (map[string]string, error) {
	cache := make(map[string]string)

	if err := c.discoverFromSitemaps(ctx, s, cfg.Target); err != nil {
		if c.Logger != nil {
			c.Logger.Warn("sitemap discovery failed, falling back to link crawl", "error", err)
		}
	}

	if s.discoveredCount() == 0 {
		if err := c.discoverFromLinks(ctx, s, cfg, cache); err != nil {
			return nil, err
		}
	}

	if s.discoveredCount() == 0 {
		return nil, docscrape.Errorf(docscrape.ENOTFOUND, "no pages found under %s", cfg.Target.BaseURL)
	}
	return cache, nil
}

// discoverFromSitemaps collects sitemap URLs that pass normalization
// and the relevance filter. Sitemap entries are treated as a flat list
// and are not expanded further.
func (c *Crawler) discoverFromSitemaps(ctx context.Context, s *Session, target docscrape.CrawlTarget) error {
	urls, err := c.Sitemaps.DiscoverURLs(ctx, target.BaseURL)
	if err != nil {
		return err
	}
	for _, raw := range urls {
		canon, err := docscrape.NormalizeURL(raw, target.BaseURL)
		if err != nil {
			continue
		}
		if !target.IsRelevant(canon) {
			continue
		}
		s.addDiscovered(canon)
		if s.discoveredCount() >= maxCrawlURLs {
			break
		}
	}
	if c.Logger != nil {
		c.Logger.Info("sitemap discovery finished", "urls", s.discoveredCount())
	}
	return nil
}

// discoverFromLinks runs a breadth-first crawl from the base URL,
// shallowest pages first. A link found at depth d is enqueued only
// when d+1 is still below the depth limit; relevant links are added to
// the discovered set regardless, so boundary pages are extracted but
// never expanded.
func (c *Crawler) discoverFromLinks(ctx context.Context, s *Session, cfg docscrape.Config, cache map[string]string) error {
	target := cfg.Target
	seed, err := docscrape.NormalizeURL(target.BaseURL, "")
	if err != nil {
		return docscrape.Errorf(docscrape.EINVALID, "invalid base URL %q: %s", target.BaseURL, err)
	}

	frontier := NewFrontier()
	frontier.Push(docscrape.QueueEntry{
		Link:  docscrape.DiscoveredLink{URL: seed, Priority: docscrape.PriorityNavigation, Source: "seed"},
		Depth: 0,
	})

	for frontier.Len() > 0 {
		if s.Canceled() || ctx.Err() != nil {
			return nil
		}
		entry, ok := frontier.Pop()
		if !ok {
			break
		}

		html, err := c.fetchPage(ctx, entry.Link.URL, cfg)
		if err != nil {
			// Linked URLs are already in the discovered set; the
			// extraction phase retries them and records the failure
			// if it persists. An unreachable seed leaves the set
			// empty, which surfaces as "no pages found".
			if c.Logger != nil {
				c.Logger.Warn("discovery fetch failed", "url", entry.Link.URL, "depth", entry.Depth, "error", err)
			}
			continue
		}
		cache[entry.Link.URL] = html
		s.addDiscovered(entry.Link.URL)

		selector := c.LinkSelectors.GetForHTML(html)
		links, err := selector.ExtractLinks(html, entry.Link.URL)
		if err != nil {
			if c.Logger != nil {
				c.Logger.Warn("link extraction failed", "url", entry.Link.URL, "error", err)
			}
			continue
		}
		for _, link := range links {
			canon, err := docscrape.NormalizeURL(link.URL, entry.Link.URL)
			if err != nil {
				continue
			}
			if !target.IsRelevant(canon) {
				continue
			}
			if !s.addDiscovered(canon) {
				continue
			}
			if entry.Depth+1 < target.MaxDepth {
				link.URL = canon
				frontier.Push(docscrape.QueueEntry{Link: link, Depth: entry.Depth + 1})
			}
			if s.discoveredCount() >= maxCrawlURLs {
				if c.Logger != nil {
					c.Logger.Warn("reached crawl URL limit", "limit", maxCrawlURLs)
				}
				return nil
			}
		}
	}

	if c.Logger != nil {
		c.Logger.Info("link discovery finished", "urls", s.discoveredCount())
	}
	return nil
}
