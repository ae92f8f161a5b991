package goquery_test

import (
	"testing"

	"github.com/matthewmetros/docscrape"
	dsgoquery "github.com/matthewmetros/docscrape/goquery"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want docscrape.Framework
	}{
		{
			name: "docusaurus by skip-to-content marker",
			html: `<html><body><div id="__docusaurus_skipToContent_fallback"></div></body></html>`,
			want: docscrape.FrameworkDocusaurus,
		},
		{
			name: "mkdocs material by data attribute",
			html: `<html><body data-md-color-scheme="default"></body></html>`,
			want: docscrape.FrameworkMkDocs,
		},
		{
			name: "sphinx by meta generator",
			html: `<html><head><meta name="generator" content="Sphinx 7.2.6"></head><body></body></html>`,
			want: docscrape.FrameworkSphinx,
		},
		{
			name: "sphinx by readthedocs theme",
			html: `<html><body><nav class="wy-nav-side"></nav></body></html>`,
			want: docscrape.FrameworkSphinx,
		},
		{
			name: "gitbook by sidebar testid",
			html: `<html><body><div data-testid="space.sidebar"></div></body></html>`,
			want: docscrape.FrameworkGitBook,
		},
		{
			name: "unknown for plain page",
			html: `<html><body><p>hello</p></body></html>`,
			want: docscrape.FrameworkUnknown,
		},
	}

	d := dsgoquery.NewDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.Detect(tt.html))
		})
	}
}

func TestRegistry_GetForHTML_FallsBackToGeneric(t *testing.T) {
	t.Parallel()

	r := dsgoquery.NewDefaultRegistry()

	sel := r.GetForHTML(`<html><body><p>plain page</p></body></html>`)
	assert.Equal(t, "generic", sel.Name())

	sel = r.GetForHTML(`<html><body><div class="theme-doc-sidebar-container"></div></body></html>`)
	assert.Equal(t, "docusaurus", sel.Name())

	// Sphinx is detected but has no dedicated selector registered
	sel = r.GetForHTML(`<html><body><div class="sphinxsidebar"></div></body></html>`)
	assert.Equal(t, "generic", sel.Name())
}
