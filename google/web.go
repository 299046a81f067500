package google

import (
	"context"
	"net/url"
	"strconv"

	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/bloom"
	"github.com/fwojciec/sift/crawl"
)

// Ensure WebSearcher implements sift.WebSearcher at compile time.
var _ sift.WebSearcher = (*WebSearcher)(nil)

// WebSearcher collects organic result URLs from Google and describes
// each result page with a MetadataScraper.
type WebSearcher struct {
	fetcher sift.Fetcher
	scraper sift.MetadataScraper
	opts    options
}

// NewWebSearcher creates a new WebSearcher. Result pages are fetched with
// the same fetcher as the search itself.
func NewWebSearcher(fetcher sift.Fetcher, scraper sift.MetadataScraper, opts ...Option) *WebSearcher {
	return &WebSearcher{fetcher: fetcher, scraper: scraper, opts: newOptions(opts)}
}

// SearchWeb returns metadata for the first numResults result pages in
// ranking order. A result whose page cannot be fetched, or that carries
// no allow-listed meta tag, is left out, so fewer than numResults
// records may be returned.
func (s *WebSearcher) SearchWeb(ctx context.Context, query string, numResults int) ([]*sift.PageMetadata, error) {
	if numResults < 0 {
		return nil, sift.Errorf(sift.EINVALID, "number of results must not be negative")
	}
	if numResults == 0 {
		return []*sift.PageMetadata{}, nil
	}

	urls, err := s.resultURLs(ctx, query, numResults)
	if err != nil {
		return nil, err
	}

	fetched := crawl.FetchAll(ctx, s.fetcher, s.opts.limiter, urls, s.opts.concurrency)

	results := make([]*sift.PageMetadata, 0, len(fetched))
	for _, f := range fetched {
		if f.Err != nil {
			continue
		}
		md := s.scraper.ScrapeMetadata(f.Result.Body, f.URL)
		if !md.HasMeta() {
			continue
		}
		results = append(results, md)
	}
	return results, nil
}

// resultURLs pages through the results until n distinct URLs are found,
// a page adds nothing new or the page cap is reached.
func (s *WebSearcher) resultURLs(ctx context.Context, query string, n int) ([]string, error) {
	seen := bloom.NewFilter(bloom.DefaultCapacity, bloom.DefaultFPRate)
	urls := make([]string, 0, n)

	perPage := n + 2
	for page := 0; page < s.opts.maxPages && len(urls) < n; page++ {
		res, err := s.fetcher.Fetch(ctx, searchRequest(s.opts.searchURL, url.Values{
			"q":     {query},
			"num":   {strconv.Itoa(perPage)},
			"hl":    {s.opts.language},
			"gl":    {s.opts.region},
			"safe":  {DefaultSafeSearch},
			"start": {strconv.Itoa(page * perPage)},
		}))
		if err != nil {
			return nil, err
		}
		if err := res.Check(); err != nil {
			return nil, err
		}

		added := 0
		for _, link := range ParseResultLinks(res.Body) {
			if seen.Seen(link) {
				continue
			}
			urls = append(urls, link)
			added++
			if len(urls) == n {
				break
			}
		}
		if added == 0 {
			break
		}
	}
	return urls, nil
}
