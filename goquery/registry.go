package goquery

import "github.com/matthewmetros/docscrape"

var _ docscrape.LinkSelectorRegistry = (*Registry)(nil)

// Registry manages framework-specific link selectors and auto-detects
// frameworks from HTML content. It uses a FrameworkDetector to identify
// the documentation framework and returns the appropriate selector,
// falling back to a generic selector when the framework is unknown
// or no specific selector is registered.
type Registry struct {
	detector  docscrape.FrameworkDetector
	fallback  docscrape.LinkSelector
	selectors map[docscrape.Framework]docscrape.LinkSelector
}

// NewRegistry creates a new Registry with the given detector and fallback
// selector.
func NewRegistry(detector docscrape.FrameworkDetector, fallback docscrape.LinkSelector) *Registry {
	return &Registry{
		detector:  detector,
		fallback:  fallback,
		selectors: make(map[docscrape.Framework]docscrape.LinkSelector),
	}
}

// NewDefaultRegistry creates a Registry with the built-in detector,
// the generic fallback, and all framework-specific selectors registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector(), NewGenericSelector())
	r.Register(docscrape.FrameworkDocusaurus, NewDocusaurusSelector())
	r.Register(docscrape.FrameworkMkDocs, NewMkDocsSelector())
	return r
}

// Get returns the selector for a specific framework.
// Returns nil if no selector is registered for the framework.
func (r *Registry) Get(framework docscrape.Framework) docscrape.LinkSelector {
	return r.selectors[framework]
}

// GetForHTML detects the framework from HTML and returns the appropriate
// selector. Falls back to the fallback selector if the framework is
// unknown or no selector is registered for the detected framework.
func (r *Registry) GetForHTML(html string) docscrape.LinkSelector {
	framework := r.detector.Detect(html)
	if selector, ok := r.selectors[framework]; ok {
		return selector
	}
	return r.fallback
}

// Register adds a selector for a framework.
// If a selector is already registered for the framework, it is replaced.
func (r *Registry) Register(framework docscrape.Framework, selector docscrape.LinkSelector) {
	r.selectors[framework] = selector
}

// List returns all registered frameworks.
func (r *Registry) List() []docscrape.Framework {
	frameworks := make([]docscrape.Framework, 0, len(r.selectors))
	for f := range r.selectors {
		frameworks = append(frameworks, f)
	}
	return frameworks
}
