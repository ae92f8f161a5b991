package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matthewmetros/docscrape"
)

// Ensure FileStore implements docscrape.PageStore at compile time.
var _ docscrape.PageStore = (*FileStore)(nil)

// FileStore implements docscrape.PageStore with atomic update
// semantics. Pages are saved to a temporary directory, then moved
// atomically into place on Commit. One file is written per requested
// format; markdown files carry YAML frontmatter.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes one file per format in the record. Failed pages carry no
// content and are skipped.
func (s *FileStore) Save(ctx context.Context, rec *docscrape.PageRecord) error {
	if rec.Status != docscrape.PageOK {
		return nil
	}

	for format, content := range rec.Formats {
		relPath, err := URLToPath(rec.URL, format)
		if err != nil {
			return err
		}

		fullPath := filepath.Join(s.tempDir(), relPath)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return err
		}

		if format == docscrape.FormatMarkdown {
			content = FormatMarkdownPage(rec)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileStore) Commit() error {
	// Nothing saved still commits an empty directory
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
