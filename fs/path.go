// Package fs provides file-based storage for crawled pages.
package fs

import (
	"net/url"
	"strings"

	"github.com/matthewmetros/docscrape"
)

// formatExtensions maps output formats to file extensions.
var formatExtensions = map[docscrape.Format]string{
	docscrape.FormatMarkdown: ".md",
	docscrape.FormatHTML:     ".html",
	docscrape.FormatText:     ".txt",
}

// URLToPath converts a page URL to a relative file path for a format.
// Example: https://example.com/docs/api/users → docs/api/users.md
func URLToPath(rawURL string, format docscrape.Format) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	ext, ok := formatExtensions[format]
	if !ok {
		return "", docscrape.Errorf(docscrape.EINVALID, "unknown format %q", format)
	}

	path := u.Path

	// Root or trailing slash becomes an index file
	if path == "" || path == "/" {
		return "index" + ext, nil
	}

	path = strings.TrimPrefix(path, "/")
	if strings.HasSuffix(path, "/") {
		return path + "index" + ext, nil
	}

	return path + ext, nil
}

// FormatMarkdownPage renders a page's markdown content with YAML
// frontmatter recording its provenance.
func FormatMarkdownPage(rec *docscrape.PageRecord) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(rec.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(rec.Title)
	b.WriteString("\ncrawled: ")
	b.WriteString(rec.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(rec.Formats[docscrape.FormatMarkdown])
	return b.String()
}
