package google

import (
	"context"
	"net/url"

	"github.com/fwojciec/sift"
)

// Ensure ImageSearcher implements sift.ImageSearcher at compile time.
var _ sift.ImageSearcher = (*ImageSearcher)(nil)

// ImageSearcher scrapes image URLs from Google's image result page.
type ImageSearcher struct {
	fetcher   sift.Fetcher
	scraper   sift.ImageScraper
	searchURL string
}

// NewImageSearcher creates a new ImageSearcher.
func NewImageSearcher(fetcher sift.Fetcher, scraper sift.ImageScraper, opts ...Option) *ImageSearcher {
	o := newOptions(opts)
	return &ImageSearcher{fetcher: fetcher, scraper: scraper, searchURL: o.searchURL}
}

// SearchImages returns up to numImages image URLs in page order.
// The response status is not checked: whatever page comes back is
// scraped, and an error page simply yields fewer images.
func (s *ImageSearcher) SearchImages(ctx context.Context, query string, numImages int) ([]string, error) {
	if numImages < 0 {
		return nil, sift.Errorf(sift.EINVALID, "number of images must not be negative")
	}
	if numImages == 0 {
		return []string{}, nil
	}

	res, err := s.fetcher.Fetch(ctx, searchRequest(s.searchURL, url.Values{
		"q":   {query},
		"tbm":  {"isch"},
	}))
	if err != nil {
		return nil, err
	}

	images := s.scraper.ScrapeImages(res.Body, numImages)
	if images == nil {
		images = []string{}
	}
	return images, nil
}
