// Package goquery implements the markup-walking extractors on top of
// github.com/PuerkitoBio/goquery: image URLs, page metadata and visible
// page text. None of them fail on malformed HTML; they degrade to empty
// results instead.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sift"
)

// Ensure ImageScraper implements sift.ImageScraper at compile time.
var _ sift.ImageScraper = (*ImageScraper)(nil)

// ImageScraper collects image URLs from img elements.
type ImageScraper struct {
	// Attrs is the attribute preference order.
	// Defaults to sift.ImageSourceAttrs.
	Attrs []string
}

// NewImageScraper creates a new ImageScraper using sift.ImageSourceAttrs.
func NewImageScraper() *ImageScraper {
	return &ImageScraper{Attrs: sift.ImageSourceAttrs}
}

// ScrapeImages returns up to limit absolute http(s) image URLs in document
// order. Duplicates are kept. Scanning stops as soon as limit is reached.
func (s *ImageScraper) ScrapeImages(html string, limit int) []string {
	urls := []string{}
	if limit <= 0 {
		return urls
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return urls
	}

	attrs := s.Attrs
	if len(attrs) == 0 {
		attrs = sift.ImageSourceAttrs
	}

	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		u := firstAttr(img, attrs)
		if strings.HasPrefix(u, "http") {
			urls = append(urls, u)
		}
		return len(urls) < limit
	})

	return urls
}

// firstAttr returns the first non-empty attribute value in preference order.
func firstAttr(sel *goquery.Selection, attrs []string) string {
	for _, name := range attrs {
		if v, ok := sel.Attr(name); ok && v != "" {
			return v
		}
	}
	return ""
}
