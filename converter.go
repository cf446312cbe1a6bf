package harvest

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be narrowed HTML (e.g., from a ContentSelector);
	// the extraction model consumes Markdown, not raw HTML.
	Convert(html string) (string, error)
}
