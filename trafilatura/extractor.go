// Package trafilatura isolates the main content of a crawled page with
// github.com/markusmobius/go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/sift"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sift.Extractor at compile time.
var _ sift.Extractor = (*Extractor)(nil)

// Extractor pulls the article body out of a page, dropping navigation,
// comment sections and other boilerplate.
type Extractor struct {
	// Fallback also runs the readability and distiller heuristics and
	// keeps the best candidate.
	Fallback bool

	// KeepComments retains user comment sections.
	KeepComments bool
}

// NewExtractor creates an Extractor with fallback heuristics enabled.
func NewExtractor() *Extractor {
	return &Extractor{Fallback: true}
}

// Extract returns the main content of rawHTML as HTML. A page with no
// recognizable content yields an Article with empty ContentHTML.
func (e *Extractor) Extract(rawHTML string) (*sift.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sift.Errorf(sift.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback:  e.Fallback,
		ExcludeComments: !e.KeepComments,
	})
	if err != nil {
		return nil, sift.WrapError(sift.EINTERNAL, err, "extract main content")
	}

	article := &sift.Article{Title: strings.TrimSpace(result.Metadata.Title)}
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, sift.WrapError(sift.EINTERNAL, err, "render main content")
		}
		article.ContentHTML = buf.String()
	}
	return article, nil
}
