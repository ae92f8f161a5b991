package docscrape

import "context"

// QueueEntry is a frontier entry: a discovered link plus its distance in
// link-hops from the seed. Depth 0 is the seed page itself.
type QueueEntry struct {
	Link  DiscoveredLink
	Depth int
}

// URLFrontier manages the discovery queue with deduplication.
// The depth bound itself is enforced by the discovery loop, not the
// frontier: entries are pushed only while depth+1 < max depth.
type URLFrontier interface {
	// Push adds an entry to the frontier.
	// Returns false if the URL has already been seen.
	Push(entry QueueEntry) bool

	// Pop returns the next entry, shallowest depth first (breadth-first
	// order), higher link priority first within a depth.
	// Returns false if the frontier is empty.
	Pop() (QueueEntry, bool)

	// Len returns the number of entries in the queue.
	Len() int

	// Seen returns true if the URL has been processed or queued.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
