package sift

import "context"

// ImageSourceAttrs is the attribute preference order used to pick an image
// URL: high-resolution data attribute, lazy-load attribute, plain src.
var ImageSourceAttrs = []string{"data-iurl", "data-src", "src"}

// MetaAllowList lists the meta tag names retained in PageMetadata.Meta.
var MetaAllowList = []string{"og:title", "og:description"}

// SnippetLength is the number of characters kept in PageMetadata.Text.
const SnippetLength = 50

// PageMetadata summarizes a search result page.
type PageMetadata struct {
	// Title is nil when the page has no title element.
	Title *string `json:"title"`

	// Meta maps allow-listed meta names to their content.
	Meta map[string]string `json:"meta"`

	// Text is the start of the page's flattened text.
	Text string `json:"text"`

	URL string `json:"url"`
}

// HasMeta reports whether any allow-listed meta tag was found.
func (m *PageMetadata) HasMeta() bool {
	return len(m.Meta) > 0
}

// IsAllowedMeta reports whether name is in MetaAllowList.
func IsAllowedMeta(name string) bool {
	for _, allowed := range MetaAllowList {
		if name == allowed {
			return true
		}
	}
	return false
}

// WebSearcher searches the web and describes each result page.
type WebSearcher interface {
	// SearchWeb returns metadata for up to numResults result pages in
	// ranking order. Pages without allow-listed meta tags are omitted.
	SearchWeb(ctx context.Context, query string, numResults int) ([]*PageMetadata, error)
}

// ImageSearcher searches for images.
type ImageSearcher interface {
	// SearchImages returns up to numImages absolute image URLs in page order.
	SearchImages(ctx context.Context, query string, numImages int) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// ImageScraper pulls image URLs out of an HTML document.
type ImageScraper interface {
	// ScrapeImages returns up to limit absolute image URLs in document order.
	ScrapeImages(html string, limit int) []string
}

// MetadataScraper describes an HTML document.
type MetadataScraper interface {
	// ScrapeMetadata never fails; malformed input yields empty fields.
	ScrapeMetadata(html, sourceURL string) *PageMetadata
}
