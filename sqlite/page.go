package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/matthewmetros/docscrape"
)

// Compile-time interface verification.
var _ docscrape.PageService = (*PageService)(nil)

// PageService implements docscrape.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

const pageColumns = `id, source_url, title, markdown, html, plain_text,
	content_hash, status, error_code, error_msg, fetched_at`

// FindPageByID retrieves a page record by ID.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*docscrape.PageRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+pageColumns+`
		FROM pages
		WHERE id = ?
	`, id)

	rec, err := scanPage(row)
	if err == sql.ErrNoRows {
		return nil, docscrape.Errorf(docscrape.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindPages retrieves page records matching the filter, newest first,
// with the total match count ignoring pagination.
func (s *PageService) FindPages(ctx context.Context, filter docscrape.PageFilter) ([]*docscrape.PageRecord, int, error) {
	where, args := buildPageFilter(filter)

	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pages"+where, args...).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	var query strings.Builder
	query.WriteString("SELECT " + pageColumns + " FROM pages")
	query.WriteString(where)
	query.WriteString(" ORDER BY fetched_at DESC, source_url ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []*docscrape.PageRecord
	for rows.Next() {
		rec, err := scanPage(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return records, count, nil
}

func buildPageFilter(filter docscrape.PageFilter) (string, []any) {
	var where strings.Builder
	var args []any

	where.WriteString(" WHERE 1=1")
	if filter.ID != nil {
		where.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CrawlID != nil {
		where.WriteString(" AND crawl_id = ?")
		args = append(args, *filter.CrawlID)
	}
	if filter.URL != nil {
		where.WriteString(" AND source_url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Status != nil {
		where.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}
	return where.String(), args
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPage(row scanner) (*docscrape.PageRecord, error) {
	var rec docscrape.PageRecord
	var markdown, html, plainText string
	var status, errorCode, fetchedAt string

	err := row.Scan(&rec.ID, &rec.URL, &rec.Title, &markdown, &html, &plainText,
		&rec.ContentHash, &status, &errorCode, &rec.ErrorMsg, &fetchedAt)
	if err != nil {
		return nil, err
	}

	rec.Status = docscrape.PageStatus(status)
	rec.ErrorCode = errorCode
	rec.Formats = make(map[docscrape.Format]string)
	if markdown != "" {
		rec.Formats[docscrape.FormatMarkdown] = markdown
	}
	if html != "" {
		rec.Formats[docscrape.FormatHTML] = html
	}
	if plainText != "" {
		rec.Formats[docscrape.FormatText] = plainText
	}

	rec.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
