package mock

import "github.com/fwojciec/sift"

var (
	_ sift.ImageScraper    = (*ImageScraper)(nil)
	_ sift.MetadataScraper = (*MetadataScraper)(nil)
)

// ImageScraper is a mock implementation of sift.ImageScraper.
type ImageScraper struct {
	ScrapeImagesFn func(html string, limit int) []string
}

func (s *ImageScraper) ScrapeImages(html string, limit int) []string {
	return s.ScrapeImagesFn(html, limit)
}

// MetadataScraper is a mock implementation of sift.MetadataScraper.
type MetadataScraper struct {
	ScrapeMetadataFn func(html, sourceURL string) *sift.PageMetadata
}

func (s *MetadataScraper) ScrapeMetadata(html, sourceURL string) *sift.PageMetadata {
	return s.ScrapeMetadataFn(html, sourceURL)
}
