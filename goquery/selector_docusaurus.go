package goquery

import "github.com/matthewmetros/docscrape"

var _ docscrape.LinkSelector = (*DocusaurusSelector)(nil)

// DocusaurusSelector extracts links from Docusaurus documentation sites.
// Validated against Docusaurus v2.x and v3.x.
//
// It targets Docusaurus-specific navigation elements:
//   - .theme-doc-sidebar-container for the docs sidebar
//   - .table-of-contents for on-page TOC
//   - .navbar for the top navigation bar
type DocusaurusSelector struct{}

// NewDocusaurusSelector creates a new DocusaurusSelector.
func NewDocusaurusSelector() *DocusaurusSelector {
	return &DocusaurusSelector{}
}

// Name returns the selector's identifier.
func (s *DocusaurusSelector) Name() string {
	return "docusaurus"
}

// ExtractLinks parses HTML and returns discovered links with priority.
func (s *DocusaurusSelector) ExtractLinks(html string, baseURL string) ([]docscrape.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: ".theme-doc-sidebar-container a[href]", Priority: docscrape.PriorityTOC, Source: "sidebar"},
		{Selector: ".table-of-contents a[href]", Priority: docscrape.PriorityTOC, Source: "toc"},
		{Selector: ".navbar a[href]", Priority: docscrape.PriorityNavigation, Source: "nav"},
		{Selector: ".pagination-nav a[href]", Priority: docscrape.PriorityNavigation, Source: "nav"},
		{Selector: "article a[href], .markdown a[href]", Priority: docscrape.PriorityContent, Source: "content"},
		{Selector: "footer a[href]", Priority: docscrape.PriorityFooter, Source: "footer"},
	}

	return ExtractLinksWithConfigs(html, baseURL, configs)
}
