package goquery

import "github.com/matthewmetros/docscrape"

var _ docscrape.LinkSelector = (*MkDocsSelector)(nil)

// MkDocsSelector extracts links from MkDocs documentation sites,
// including the Material for MkDocs theme.
type MkDocsSelector struct{}

// NewMkDocsSelector creates a new MkDocsSelector.
func NewMkDocsSelector() *MkDocsSelector {
	return &MkDocsSelector{}
}

// Name returns the selector's identifier.
func (s *MkDocsSelector) Name() string {
	return "mkdocs"
}

// ExtractLinks parses HTML and returns discovered links with priority.
func (s *MkDocsSelector) ExtractLinks(html string, baseURL string) ([]docscrape.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: ".md-nav--primary a[href], .md-sidebar a[href]", Priority: docscrape.PriorityTOC, Source: "sidebar"},
		{Selector: ".md-nav--secondary a[href]", Priority: docscrape.PriorityTOC, Source: "toc"},
		{Selector: ".md-tabs a[href], .md-header a[href]", Priority: docscrape.PriorityNavigation, Source: "nav"},
		{Selector: ".md-content a[href], article a[href]", Priority: docscrape.PriorityContent, Source: "content"},
		{Selector: ".md-footer a[href], footer a[href]", Priority: docscrape.PriorityFooter, Source: "footer"},
	}

	return ExtractLinksWithConfigs(html, baseURL, configs)
}
