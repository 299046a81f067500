package sift

// Article holds the main content of a page with boilerplate removed.
type Article struct {
	// Title comes from page metadata (meta tags, JSON+LD, etc.).
	Title string

	// ContentHTML is the main content as clean HTML.
	ContentHTML string
}

// Extractor isolates the main content of an HTML page.
type Extractor interface {
	// Extract returns the main content of rawHTML.
	// Returns EINVALID for empty input.
	Extract(rawHTML string) (*Article, error)
}

// Converter renders HTML as Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g. Article.ContentHTML) into Markdown.
	Convert(html string) (string, error)
}
