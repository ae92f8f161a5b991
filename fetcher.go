package docscrape

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET and returns the response body.
	// The context controls timeout and cancellation. Transient failures
	// (network errors, 5xx) return EUNAVAILABLE; 4xx responses return
	// ENOTFOUND and are terminal for the URL.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying resources.
	Close() error
}
