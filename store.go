package docscrape

import "context"

// PageStore persists page records with atomic semantics.
// Save accumulates records in a pending state; Commit makes them
// permanent; Abort discards pending changes. A store instance serves
// exactly one crawl.
type PageStore interface {
	Save(ctx context.Context, record *PageRecord) error
	Commit() error
	Abort() error
}

// PageFilter is a filter for FindPages. Nil fields are ignored.
type PageFilter struct {
	ID      *string
	CrawlID *string
	URL     *string
	Status  *PageStatus

	Limit  int
	Offset int
}

// PageService queries previously committed page records.
type PageService interface {
	// FindPageByID retrieves a single record. Returns ENOTFOUND if it
	// does not exist.
	FindPageByID(ctx context.Context, id string) (*PageRecord, error)

	// FindPages retrieves records matching the filter, newest first,
	// along with the total match count ignoring Limit and Offset.
	FindPages(ctx context.Context, filter PageFilter) ([]*PageRecord, int, error)
}
