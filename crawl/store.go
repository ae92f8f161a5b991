package crawl

import (
	"context"

	"github.com/matthewmetros/docscrape"
)

var _ docscrape.PageStore = (MultiStore)(nil)

// MultiStore fans page store operations out to several stores, so a
// crawl can persist to the filesystem and a database at once. Every
// store sees every operation; the first error is returned.
type MultiStore []docscrape.PageStore

func (m MultiStore) Save(ctx context.Context, rec *docscrape.PageRecord) error {
	var first error
	for _, s := range m {
		if err := s.Save(ctx, rec); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m MultiStore) Commit() error {
	var first error
	for _, s := range m {
		if err := s.Commit(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m MultiStore) Abort() error {
	var first error
	for _, s := range m {
		if err := s.Abort(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
