package mock

import (
	"context"

	"github.com/matthewmetros/docscrape"
)

var _ docscrape.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of docscrape.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
