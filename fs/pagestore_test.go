package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthewmetros/docscrape"
	"github.com/matthewmetros/docscrape/fs"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		format  docscrape.Format
		want    string
		wantErr bool
	}{
		{
			name:   "simple path",
			url:    "https://example.com/docs/api/users",
			format: docscrape.FormatMarkdown,
			want:   "docs/api/users.md",
		},
		{
			name:   "html extension",
			url:    "https://example.com/docs/api/users",
			format: docscrape.FormatHTML,
			want:   "docs/api/users.html",
		},
		{
			name:   "text extension",
			url:    "https://example.com/docs/api/users",
			format: docscrape.FormatText,
			want:   "docs/api/users.txt",
		},
		{
			name:   "trailing slash becomes index",
			url:    "https://example.com/docs/",
			format: docscrape.FormatMarkdown,
			want:   "docs/index.md",
		},
		{
			name:   "root path becomes index",
			url:    "https://example.com/",
			format: docscrape.FormatMarkdown,
			want:   "index.md",
		},
		{
			name:   "ignores query string",
			url:    "https://example.com/docs/api?version=2",
			format: docscrape.FormatMarkdown,
			want:   "docs/api.md",
		},
		{
			name:    "unknown format",
			url:     "https://example.com/docs",
			format:  docscrape.Format("pdf"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url, tt.format)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMarkdownPage(t *testing.T) {
	t.Parallel()

	rec := &docscrape.PageRecord{
		URL:       "https://example.com/docs/api",
		Title:     "API Reference",
		FetchedAt: time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
		Formats: map[docscrape.Format]string{
			docscrape.FormatMarkdown: "# API Reference\n\nThe API docs.",
		},
	}

	got := fs.FormatMarkdownPage(rec)

	want := `---
source: https://example.com/docs/api
title: API Reference
crawled: 2026-01-08
---

# API Reference

The API docs.`
	assert.Equal(t, want, got)
}

func TestFileStore(t *testing.T) {
	t.Parallel()

	record := func() *docscrape.PageRecord {
		return &docscrape.PageRecord{
			ID:        "rec-1",
			URL:       "https://example.com/docs/guide",
			Title:     "Guide",
			Status:    docscrape.PageOK,
			FetchedAt: time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
			Formats: map[docscrape.Format]string{
				docscrape.FormatMarkdown: "# Guide",
				docscrape.FormatHTML:     "<html>guide</html>",
			},
		}
	}

	t.Run("save then commit moves files into place", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewFileStore(dir, "docs")

		require.NoError(t, store.Save(context.Background(), record()))

		// Not visible before commit
		_, err := os.Stat(filepath.Join(dir, "docs"))
		require.True(t, os.IsNotExist(err))

		require.NoError(t, store.Commit())

		md, err := os.ReadFile(filepath.Join(dir, "docs", "docs", "guide.md"))
		require.NoError(t, err)
		assert.Contains(t, string(md), "source: https://example.com/docs/guide")
		assert.Contains(t, string(md), "# Guide")

		html, err := os.ReadFile(filepath.Join(dir, "docs", "docs", "guide.html"))
		require.NoError(t, err)
		assert.Equal(t, "<html>guide</html>", string(html))

		// Temp directory is gone
		_, err = os.Stat(filepath.Join(dir, "docs.tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("commit replaces previous output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stale := filepath.Join(dir, "docs", "old")
		require.NoError(t, os.MkdirAll(stale, 0755))

		store := fs.NewFileStore(dir, "docs")
		require.NoError(t, store.Save(context.Background(), record()))
		require.NoError(t, store.Commit())

		_, err := os.Stat(stale)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("abort discards pending files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewFileStore(dir, "docs")

		require.NoError(t, store.Save(context.Background(), record()))
		require.NoError(t, store.Abort())

		_, err := os.Stat(filepath.Join(dir, "docs"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(dir, "docs.tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("failed pages are skipped", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewFileStore(dir, "docs")

		rec := record()
		rec.Status = docscrape.PageFailed
		rec.ErrorCode = docscrape.ENOTFOUND

		require.NoError(t, store.Save(context.Background(), rec))
		require.NoError(t, store.Commit())

		entries, err := os.ReadDir(filepath.Join(dir, "docs"))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
