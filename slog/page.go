package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sift"
)

// Ensure LoggingPageCrawler implements sift.PageCrawler.
var _ sift.PageCrawler = (*LoggingPageCrawler)(nil)

// LoggingPageCrawler wraps a PageCrawler with logging.
type LoggingPageCrawler struct {
	next   sift.PageCrawler
	logger *slog.Logger
}

// NewLoggingPageCrawler creates a new LoggingPageCrawler.
func NewLoggingPageCrawler(next sift.PageCrawler, logger *slog.Logger) *LoggingPageCrawler {
	return &LoggingPageCrawler{next: next, logger: logger}
}

// CrawlPage delegates to the wrapped crawler and logs the page size.
func (c *LoggingPageCrawler) CrawlPage(ctx context.Context, url string) (page *sift.CrawledPage, err error) {
	defer func(begin time.Time) {
		var title string
		var size int
		if page != nil {
			title, size = page.Title, len(page.Text)
		}
		c.logger.Info("crawl",
			"url", url,
			"title", title,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.CrawlPage(ctx, url)
}
