package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sift"
)

// Ensure TextNormalizer implements sift.TextNormalizer at compile time.
var _ sift.TextNormalizer = (*TextNormalizer)(nil)

// TextNormalizer turns an HTML document into normalized visible text.
type TextNormalizer struct {
	// RemoveTags are dropped with their subtrees before text extraction.
	// Defaults to sift.NonContentTags.
	RemoveTags []string
}

// NewTextNormalizer creates a new TextNormalizer using sift.NonContentTags.
func NewTextNormalizer() *TextNormalizer {
	return &TextNormalizer{RemoveTags: sift.NonContentTags}
}

// Normalize returns the page title and its visible text with all
// whitespace runs collapsed to single spaces. Pages without a usable
// title get sift.NoTitle.
func (c *TextNormalizer) Normalize(html string) *sift.CrawledPage {
	page := &sift.CrawledPage{Title: sift.NoTitle}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return page
	}

	page.Title = Title(doc)

	tags := c.RemoveTags
	if len(tags) == 0 {
		tags = sift.NonContentTags
	}
	doc.Find(strings.Join(tags, ", ")).Remove()

	page.Text = sift.CollapseWhitespace(doc.Text())
	return page
}

// Title returns the trimmed text of the first title element, or
// sift.NoTitle when there is none or it is blank.
func Title(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return sift.NoTitle
	}
	return title
}
