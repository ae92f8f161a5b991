package mock

import "github.com/matthewmetros/docscrape"

var _ docscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*docscrape.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*docscrape.ExtractResult, error) {
	return e.ExtractFn(html)
}
