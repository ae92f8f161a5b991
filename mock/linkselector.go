package mock

import "github.com/matthewmetros/docscrape"

var _ docscrape.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of docscrape.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]docscrape.DiscoveredLink, error)
	NameFn         func() string
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]docscrape.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}

func (s *LinkSelector) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}

var _ docscrape.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of docscrape.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) docscrape.Framework
}

func (d *FrameworkDetector) Detect(html string) docscrape.Framework {
	return d.DetectFn(html)
}

var _ docscrape.LinkSelectorRegistry = (*LinkSelectorRegistry)(nil)

// LinkSelectorRegistry is a mock implementation of
// docscrape.LinkSelectorRegistry.
type LinkSelectorRegistry struct {
	GetFn        func(framework docscrape.Framework) docscrape.LinkSelector
	GetForHTMLFn func(html string) docscrape.LinkSelector
	RegisterFn   func(framework docscrape.Framework, selector docscrape.LinkSelector)
	ListFn       func() []docscrape.Framework
}

func (r *LinkSelectorRegistry) Get(framework docscrape.Framework) docscrape.LinkSelector {
	return r.GetFn(framework)
}

func (r *LinkSelectorRegistry) GetForHTML(html string) docscrape.LinkSelector {
	return r.GetForHTMLFn(html)
}

func (r *LinkSelectorRegistry) Register(framework docscrape.Framework, selector docscrape.LinkSelector) {
	r.RegisterFn(framework, selector)
}

func (r *LinkSelectorRegistry) List() []docscrape.Framework {
	return r.ListFn()
}
