// Package readability isolates the main content of a crawled page with
// github.com/go-shiori/go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/sift"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements sift.Extractor at compile time.
var _ sift.Extractor = (*Extractor)(nil)

// Extractor scores page blocks the way Firefox Reader View does and
// keeps the best-scoring one.
type Extractor struct {
	// BaseURL, when set, resolves relative links and image sources in
	// the extracted content.
	BaseURL *url.URL
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of rawHTML as HTML.
func (e *Extractor) Extract(rawHTML string) (*sift.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sift.Errorf(sift.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.BaseURL)
	if err != nil {
		return nil, sift.WrapError(sift.EINTERNAL, err, "extract main content")
	}

	return &sift.Article{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
