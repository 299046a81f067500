package sift

import (
	"context"
	"time"
)

// NoTitle replaces the title of pages without a title element.
const NoTitle = "제목 없음"

// NonContentTags are removed before visible text is extracted.
var NonContentTags = []string{"script", "style", "nav", "footer", "header"}

// Format selects how a crawled page's text is rendered.
type Format string

// Supported crawl formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// CrawledPage is the cleaned text of a single page.
type CrawledPage struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// PageCrawler fetches a page and extracts its visible text.
type PageCrawler interface {
	// CrawlPage returns the cleaned text and title of the page at url.
	// Returns EFETCH if the page cannot be retrieved with a 2xx status.
	CrawlPage(ctx context.Context, url string) (*CrawledPage, error)
}

// ArchivedPage is a crawled page saved for later reference.
type ArchivedPage struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Text        string    `json:"text"`
	Format      Format    `json:"format"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *ArchivedPage) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	switch p.Format {
	case FormatText, FormatMarkdown:
	default:
		return Errorf(EINVALID, "unknown page format %q", p.Format)
	}
	return nil
}

// PageService represents a service for archiving crawled pages.
type PageService interface {
	// CreatePage stores a page and assigns its ID, hash and fetch time.
	CreatePage(ctx context.Context, page *ArchivedPage) error

	// FindPageByID retrieves a page by ID.
	// Returns ENOTFOUND if page does not exist.
	FindPageByID(ctx context.Context, id string) (*ArchivedPage, error)

	// FindPages retrieves pages matching the filter, newest first.
	FindPages(ctx context.Context, filter PageFilter) ([]*ArchivedPage, error)
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PageWriter writes pages to an export destination.
type PageWriter interface {
	WritePage(ctx context.Context, page *ArchivedPage) error
}

// TextNormalizer reduces an HTML document to its title and visible text.
type TextNormalizer interface {
	// Normalize never fails; malformed input yields the NoTitle sentinel
	// and empty text.
	Normalize(html string) *CrawledPage
}
