package docscrape

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should be
	// clean HTML (e.g., from an Extractor); headings, lists, and links
	// are preserved structurally.
	Convert(html string) (string, error)
}
