package goquery

import "github.com/matthewmetros/docscrape"

var _ docscrape.LinkSelector = (*GenericSelector)(nil)

// GenericSelector implements link extraction using universal CSS selectors
// that work across any documentation framework. It uses common HTML
// patterns and class names to identify navigation, TOC, content, and
// footer areas.
type GenericSelector struct{}

// NewGenericSelector creates a new GenericSelector.
func NewGenericSelector() *GenericSelector {
	return &GenericSelector{}
}

// Name returns the selector's identifier.
func (s *GenericSelector) Name() string {
	return "generic"
}

// ExtractLinks parses HTML and returns discovered links with priority.
//
// Priority order (highest to lowest):
//   - TOC: .toc, .table-of-contents, .sidebar, aside
//   - Navigation: nav, [role="navigation"], .nav, .menu, .navbar
//   - Content: main, article, .content, .doc-content
//   - Footer: footer, .footer
//   - Fallback: any remaining anchor in the body
func (s *GenericSelector) ExtractLinks(html string, baseURL string) ([]docscrape.DiscoveredLink, error) {
	configs := []SelectorConfig{
		{Selector: ".toc a[href], .table-of-contents a[href], .sidebar a[href], aside a[href]", Priority: docscrape.PriorityTOC, Source: "toc"},
		{Selector: "nav a[href], [role=\"navigation\"] a[href], .nav a[href], .menu a[href], .navbar a[href]", Priority: docscrape.PriorityNavigation, Source: "nav"},
		{Selector: "main a[href], article a[href], .content a[href], .doc-content a[href]", Priority: docscrape.PriorityContent, Source: "content"},
		{Selector: "footer a[href], .footer a[href]", Priority: docscrape.PriorityFooter, Source: "footer"},
		{Selector: "body a[href]", Priority: docscrape.PriorityFallback, Source: "fallback"},
	}

	return ExtractLinksWithConfigs(html, baseURL, configs)
}
