package crawl

import (
	"context"
	"strings"

	"github.com/fwojciec/sift"
)

var _ sift.PageCrawler = (*PageCrawler)(nil)

// PageCrawler fetches a single page and reduces it to readable text.
type PageCrawler struct {
	Fetcher    sift.Fetcher
	Normalizer sift.TextNormalizer

	// Format selects the rendering. The zero value means FormatText.
	Format sift.Format

	// Extractor and Converter are used by FormatMarkdown only.
	Extractor sift.Extractor
	Converter sift.Converter
}

// CrawlPage fetches url and returns its title and text. In Markdown mode
// the main content is extracted and converted; when that yields nothing
// the normalized visible text is returned instead.
func (c *PageCrawler) CrawlPage(ctx context.Context, url string) (*sift.CrawledPage, error) {
	if url == "" {
		return nil, sift.Errorf(sift.EINVALID, "url required")
	}
	switch c.Format {
	case "", sift.FormatText, sift.FormatMarkdown:
	default:
		return nil, sift.Errorf(sift.EINVALID, "unknown format %q", c.Format)
	}

	res, err := c.Fetcher.Fetch(ctx, &sift.FetchRequest{URL: url})
	if err != nil {
		return nil, err
	}
	if err := res.Check(); err != nil {
		return nil, err
	}

	page := c.Normalizer.Normalize(res.Body)
	page.URL = url

	if c.Format != sift.FormatMarkdown {
		return page, nil
	}
	if md, title, ok := c.markdown(res.Body); ok {
		page.Text = md
		if title != "" {
			page.Title = title
		}
	}
	return page, nil
}

// markdown returns the main content of rawHTML as Markdown and the
// article title. ok is false when no usable content was found.
func (c *PageCrawler) markdown(rawHTML string) (md, title string, ok bool) {
	if c.Extractor == nil || c.Converter == nil {
		return "", "", false
	}

	article, err := c.Extractor.Extract(rawHTML)
	if err != nil || strings.TrimSpace(article.ContentHTML) == "" {
		return "", "", false
	}

	md, err = c.Converter.Convert(article.ContentHTML)
	if err != nil {
		return "", "", false
	}
	md = strings.TrimSpace(md)
	if md == "" {
		return "", "", false
	}
	return md, strings.TrimSpace(article.Title), true
}
