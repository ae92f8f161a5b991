package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/matthewmetros/docscrape"
)

var _ docscrape.FrameworkDetector = (*Detector)(nil)

// Detector identifies documentation frameworks from HTML content.
// It checks for framework-specific CSS classes, data attributes, meta
// tags, and structural markers that are unique to each documentation
// generator.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(html string) docscrape.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return docscrape.FrameworkUnknown
	}

	// Check meta generator tags first - most reliable when present
	if framework := d.detectFromMetaGenerator(doc); framework != docscrape.FrameworkUnknown {
		return framework
	}

	// Docusaurus markers; __docusaurus_skipToContent_fallback is highly specific
	if d.hasSelector(doc, "#__docusaurus_skipToContent_fallback") ||
		d.hasSelector(doc, ".theme-doc-sidebar-container") {
		return docscrape.FrameworkDocusaurus
	}

	// MkDocs Material markers; data-md-* attributes are unique to it
	if d.hasSelector(doc, "[data-md-color-scheme]") ||
		d.hasSelector(doc, "[data-md-component]") ||
		d.hasSelector(doc, ".md-nav--primary") {
		return docscrape.FrameworkMkDocs
	}

	// Sphinx markers (including ReadTheDocs theme)
	if d.hasSelector(doc, ".toctree-wrapper") ||
		d.hasSelector(doc, ".wy-nav-side") ||
		d.hasSelector(doc, ".sphinxsidebar") {
		return docscrape.FrameworkSphinx
	}

	// GitBook markers
	if d.hasSelector(doc, "[data-testid='space.sidebar']") ||
		d.hasSelector(doc, "[data-testid='page.desktopTableOfContents']") {
		return docscrape.FrameworkGitBook
	}

	return docscrape.FrameworkUnknown
}

// detectFromMetaGenerator checks the meta generator tag for framework
// identification.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) docscrape.Framework {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	if generator == "" {
		return docscrape.FrameworkUnknown
	}

	switch {
	case strings.Contains(generator, "sphinx"):
		return docscrape.FrameworkSphinx
	case strings.Contains(generator, "gitbook"):
		return docscrape.FrameworkGitBook
	case strings.Contains(generator, "docusaurus"):
		return docscrape.FrameworkDocusaurus
	case strings.Contains(generator, "mkdocs"):
		return docscrape.FrameworkMkDocs
	}

	return docscrape.FrameworkUnknown
}

// hasSelector checks if the document contains at least one element
// matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
