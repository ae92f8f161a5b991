package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewmetros/docscrape"
	"github.com/matthewmetros/docscrape/sqlite"
)

func testRecord(id, url string) *docscrape.PageRecord {
	return &docscrape.PageRecord{
		ID:          id,
		URL:         url,
		Title:       "Test Page",
		Status:      docscrape.PageOK,
		ContentHash: "xxh64:0011223344556677",
		FetchedAt:   time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC),
		Formats: map[docscrape.Format]string{
			docscrape.FormatMarkdown: "# Test",
			docscrape.FormatText:     "Test",
		},
	}
}

func TestPageStore_CommitMakesPagesVisible(t *testing.T) {
	t.Parallel()

	db := MustOpenDB(t)
	ctx := context.Background()

	store, err := sqlite.NewPageStore(ctx, db, "https://docs.example.com")
	require.NoError(t, err)
	require.NotEmpty(t, store.CrawlID())

	require.NoError(t, store.Save(ctx, testRecord("p1", "https://docs.example.com/a")))
	require.NoError(t, store.Save(ctx, testRecord("p2", "https://docs.example.com/b")))
	require.NoError(t, store.Commit())

	svc := sqlite.NewPageService(db)
	records, n, err := svc.FindPages(ctx, docscrape.PageFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, records, 2)

	rec, err := svc.FindPageByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com/a", rec.URL)
	assert.Equal(t, "Test Page", rec.Title)
	assert.Equal(t, "# Test", rec.Formats[docscrape.FormatMarkdown])
	assert.Equal(t, "Test", rec.Formats[docscrape.FormatText])
	assert.NotContains(t, rec.Formats, docscrape.FormatHTML)
	assert.Equal(t, docscrape.PageOK, rec.Status)
	assert.True(t, rec.FetchedAt.Equal(time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC)))
}

func TestPageStore_AbortDiscardsCrawl(t *testing.T) {
	t.Parallel()

	db := MustOpenDB(t)
	ctx := context.Background()

	store, err := sqlite.NewPageStore(ctx, db, "https://docs.example.com")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, testRecord("p1", "https://docs.example.com/a")))
	require.NoError(t, store.Abort())

	svc := sqlite.NewPageService(db)
	_, n, err := svc.FindPages(ctx, docscrape.PageFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPageStore_FinishedStoreRejectsSaves(t *testing.T) {
	t.Parallel()

	db := MustOpenDB(t)
	ctx := context.Background()

	store, err := sqlite.NewPageStore(ctx, db, "https://docs.example.com")
	require.NoError(t, err)
	require.NoError(t, store.Commit())

	err = store.Save(ctx, testRecord("p1", "https://docs.example.com/a"))
	require.Error(t, err)
	assert.Equal(t, docscrape.EINTERNAL, docscrape.ErrorCode(err))

	// Abort after commit is a no-op.
	require.NoError(t, store.Abort())
}

func TestPageStore_ValidatesRecords(t *testing.T) {
	t.Parallel()

	db := MustOpenDB(t)
	ctx := context.Background()

	store, err := sqlite.NewPageStore(ctx, db, "https://docs.example.com")
	require.NoError(t, err)
	defer store.Abort()

	err = store.Save(ctx, &docscrape.PageRecord{ID: "p1", Status: docscrape.PageOK})
	require.Error(t, err)
	assert.Equal(t, docscrape.EINVALID, docscrape.ErrorCode(err))
}

func TestPageService_Filters(t *testing.T) {
	t.Parallel()

	db := MustOpenDB(t)
	ctx := context.Background()

	store, err := sqlite.NewPageStore(ctx, db, "https://docs.example.com")
	require.NoError(t, err)
	crawlID := store.CrawlID()

	failed := testRecord("p2", "https://docs.example.com/missing")
	failed.Status = docscrape.PageFailed
	failed.ErrorCode = docscrape.ENOTFOUND
	failed.ErrorMsg = "not found"
	failed.Formats = nil

	require.NoError(t, store.Save(ctx, testRecord("p1", "https://docs.example.com/a")))
	require.NoError(t, store.Save(ctx, failed))
	require.NoError(t, store.Commit())

	svc := sqlite.NewPageService(db)

	t.Run("by status", func(t *testing.T) {
		status := docscrape.PageFailed
		records, n, err := svc.FindPages(ctx, docscrape.PageFilter{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		require.Len(t, records, 1)
		assert.Equal(t, "p2", records[0].ID)
		assert.Equal(t, docscrape.ENOTFOUND, records[0].ErrorCode)
		assert.Equal(t, "not found", records[0].ErrorMsg)
	})

	t.Run("by URL", func(t *testing.T) {
		url := "https://docs.example.com/a"
		records, n, err := svc.FindPages(ctx, docscrape.PageFilter{URL: &url})
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		require.Len(t, records, 1)
		assert.Equal(t, "p1", records[0].ID)
	})

	t.Run("by crawl", func(t *testing.T) {
		records, n, err := svc.FindPages(ctx, docscrape.PageFilter{CrawlID: &crawlID})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Len(t, records, 2)
	})

	t.Run("pagination keeps total count", func(t *testing.T) {
		records, n, err := svc.FindPages(ctx, docscrape.PageFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Len(t, records, 1)
	})

	t.Run("missing page", func(t *testing.T) {
		_, err := svc.FindPageByID(ctx, "nope")
		require.Error(t, err)
		assert.Equal(t, docscrape.ENOTFOUND, docscrape.ErrorCode(err))
	})
}
