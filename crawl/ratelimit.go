package crawl

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"

	"github.com/matthewmetros/docscrape"
)

// RateLimiter applies a per-domain request rate so concurrent workers
// hitting the same host stay polite.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

var _ docscrape.DomainLimiter = (*RateLimiter)(nil)

// NewRateLimiter creates a limiter allowing rps requests per second
// per domain, with the given burst size.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

// Wait blocks until the domain of the given URL may be requested, or
// the context is canceled. Unparseable URLs share a single bucket.
func (r *RateLimiter) Wait(ctx context.Context, rawURL string) error {
	return r.limiterFor(rawURL).Wait(ctx)
}

func (r *RateLimiter) limiterFor(rawURL string) *rate.Limiter {
	domain := ""
	if u, err := url.Parse(rawURL); err == nil {
		domain = u.Hostname()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.limiters[domain]
	if !ok {
		l = rate.NewLimiter(r.rps, r.burst)
		r.limiters[domain] = l
	}
	return l
}
