// Package readability provides a fallback content extractor backed by
// go-readability, used when trafilatura yields no content for a page.
package readability

import (
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/matthewmetros/docscrape"
)

// Ensure Extractor implements docscrape.Extractor at compile time.
var _ docscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docscrape.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docscrape.Errorf(docscrape.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, docscrape.Errorf(docscrape.EINTERNAL, "readability extraction: %v", err)
	}

	return &docscrape.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		ContentText: article.TextContent,
	}, nil
}
