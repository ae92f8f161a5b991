package docscrape

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, with boilerplate
	// (nav, footer, sidebar) removed. Input to markdown conversion.
	ContentHTML string

	// ContentText is the same content region as readable plain text.
	ContentText string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// The markdown and text representations of a page are both derived from
// the content region identified here.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
