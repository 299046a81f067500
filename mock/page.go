package mock

import (
	"context"

	"github.com/fwojciec/sift"
)

var (
	_ sift.PageCrawler   = (*PageCrawler)(nil)
	_ sift.PageService   = (*PageService)(nil)
	_ sift.PageWriter    = (*PageWriter)(nil)
	_ sift.Extractor     = (*Extractor)(nil)
	_ sift.Converter     = (*Converter)(nil)
	_ sift.DomainLimiter = (*DomainLimiter)(nil)
)

// PageCrawler is a mock implementation of sift.PageCrawler.
type PageCrawler struct {
	CrawlPageFn func(ctx context.Context, url string) (*sift.CrawledPage, error)
}

func (c *PageCrawler) CrawlPage(ctx context.Context, url string) (*sift.CrawledPage, error) {
	return c.CrawlPageFn(ctx, url)
}

// PageService is a mock implementation of sift.PageService.
type PageService struct {
	CreatePageFn   func(ctx context.Context, page *sift.ArchivedPage) error
	FindPageByIDFn func(ctx context.Context, id string) (*sift.ArchivedPage, error)
	FindPagesFn    func(ctx context.Context, filter sift.PageFilter) ([]*sift.ArchivedPage, error)
}

func (s *PageService) CreatePage(ctx context.Context, page *sift.ArchivedPage) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByID(ctx context.Context, id string) (*sift.ArchivedPage, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *PageService) FindPages(ctx context.Context, filter sift.PageFilter) ([]*sift.ArchivedPage, error) {
	return s.FindPagesFn(ctx, filter)
}

// PageWriter is a mock implementation of sift.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *sift.ArchivedPage) error
}

func (w *PageWriter) WritePage(ctx context.Context, page *sift.ArchivedPage) error {
	return w.WritePageFn(ctx, page)
}

// Extractor is a mock implementation of sift.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string) (*sift.Article, error)
}

func (e *Extractor) Extract(rawHTML string) (*sift.Article, error) {
	return e.ExtractFn(rawHTML)
}

// Converter is a mock implementation of sift.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// DomainLimiter is a mock implementation of sift.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ sift.TextNormalizer = (*TextNormalizer)(nil)

// TextNormalizer is a mock implementation of sift.TextNormalizer.
type TextNormalizer struct {
	NormalizeFn func(html string) *sift.CrawledPage
}

func (n *TextNormalizer) Normalize(html string) *sift.CrawledPage {
	return n.NormalizeFn(html)
}
