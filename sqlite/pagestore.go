package sqlite

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matthewmetros/docscrape"
)

// Compile-time interface verification.
var _ docscrape.PageStore = (*PageStore)(nil)

// PageStore implements docscrape.PageStore using a single SQLite
// transaction per crawl. Records inserted through Save become visible
// to readers only after Commit; Abort rolls the whole crawl back,
// including its crawls row.
type PageStore struct {
	db      *DB
	crawlID string

	mu sync.Mutex
	tx *sql.Tx
}

// NewPageStore begins a crawl transaction and records the crawl in the
// crawls table. The store must be finished with Commit or Abort.
func NewPageStore(ctx context.Context, db *DB, baseURL string) (*PageStore, error) {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}

	crawlID := uuid.New().String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO crawls (id, base_url, started_at)
		VALUES (?, ?, ?)
	`, crawlID, baseURL, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	return &PageStore{db: db, crawlID: crawlID, tx: tx}, nil
}

// CrawlID returns the identifier of the crawl this store serves.
func (s *PageStore) CrawlID() string {
	return s.crawlID
}

// Save inserts a page record into the pending transaction. Safe for
// concurrent use by crawl workers.
func (s *PageStore) Save(ctx context.Context, rec *docscrape.PageRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tx == nil {
		return docscrape.Errorf(docscrape.EINTERNAL, "page store is already finished")
	}

	_, err := s.tx.ExecContext(ctx, `
		INSERT INTO pages (id, crawl_id, source_url, title, markdown, html, plain_text,
			content_hash, status, error_code, error_msg, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, s.crawlID, rec.URL, rec.Title,
		rec.Formats[docscrape.FormatMarkdown],
		rec.Formats[docscrape.FormatHTML],
		rec.Formats[docscrape.FormatText],
		rec.ContentHash, string(rec.Status), rec.ErrorCode, rec.ErrorMsg,
		rec.FetchedAt.Format(time.RFC3339))
	return err
}

// Commit stamps the crawl as finished and commits the transaction.
func (s *PageStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tx == nil {
		return docscrape.Errorf(docscrape.EINTERNAL, "page store is already finished")
	}

	_, err := s.tx.Exec(`
		UPDATE crawls SET committed_at = ? WHERE id = ?
	`, time.Now().UTC().Format(time.RFC3339), s.crawlID)
	if err != nil {
		s.tx.Rollback()
		s.tx = nil
		return err
	}

	err = s.tx.Commit()
	s.tx = nil
	return err
}

// Abort rolls back the pending transaction.
func (s *PageStore) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback()
	s.tx = nil
	return err
}
