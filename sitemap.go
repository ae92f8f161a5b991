package docscrape

import "context"

// SitemapService discovers URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all URLs from a site's sitemap. It first checks
	// robots.txt for Sitemap: directives, then probes conventional
	// sitemap paths. Sitemap indexes are resolved recursively.
	//
	// Sitemap entries are flat: they carry no depth and are never
	// expanded further. An empty (non-nil) slice means no sitemap was
	// found; callers fall back to recursive HTML discovery.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
