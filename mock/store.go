package mock

import (
	"context"

	"github.com/matthewmetros/docscrape"
)

var _ docscrape.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of docscrape.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, record *docscrape.PageRecord) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, record *docscrape.PageRecord) error {
	return s.SaveFn(ctx, record)
}

func (s *PageStore) Commit() error {
	if s.CommitFn == nil {
		return nil
	}
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	if s.AbortFn == nil {
		return nil
	}
	return s.AbortFn()
}
