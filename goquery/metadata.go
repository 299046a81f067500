package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sift"
)

// SnippetSkipTags hold text that is never rendered and so is left out of
// the metadata snippet.
var SnippetSkipTags = []string{"script", "style", "noscript", "template"}

// Ensure MetadataScraper implements sift.MetadataScraper at compile time.
var _ sift.MetadataScraper = (*MetadataScraper)(nil)

// MetadataScraper reads a page's title, allow-listed meta tags and the
// start of its text.
type MetadataScraper struct{}

// NewMetadataScraper creates a new MetadataScraper.
func NewMetadataScraper() *MetadataScraper {
	return &MetadataScraper{}
}

// ScrapeMetadata extracts metadata from html fetched from sourceURL.
// The result is never nil; unparseable input yields empty fields.
func (s *MetadataScraper) ScrapeMetadata(html, sourceURL string) *sift.PageMetadata {
	md := &sift.PageMetadata{
		Meta: map[string]string{},
		URL:  sourceURL,
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return md
	}

	if title := doc.Find("title").First(); title.Length() > 0 {
		t := strings.TrimSpace(title.Text())
		md.Title = &t
	}

	doc.Find("meta").Each(func(_ int, tag *goquery.Selection) {
		name := firstAttr(tag, []string{"name", "property"})
		content, _ := tag.Attr("content")
		if name == "" || content == "" {
			return
		}
		if sift.IsAllowedMeta(name) {
			md.Meta[name] = content
		}
	})

	doc.Find(strings.Join(SnippetSkipTags, ", ")).Remove()
	snippet := sift.TruncateRunes(doc.Text(), sift.SnippetLength)
	md.Text = strings.TrimSpace(strings.ReplaceAll(snippet, "\n", " "))

	return md
}
