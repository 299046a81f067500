// Package google implements sift.WebSearcher and sift.ImageSearcher by
// scraping Google's HTML result pages.
package google

import (
	"net/http"
	"net/url"

	"github.com/fwojciec/sift"
)

// DefaultSearchURL is the Google search endpoint.
const DefaultSearchURL = "https://www.google.com/search"

// Defaults for web search.
const (
	DefaultLanguage    = "ko"
	DefaultRegion      = "KR"
	DefaultSafeSearch  = "active"
	DefaultMaxPages    = 3
	DefaultConcurrency = 5
	DefaultDomainRPS   = 2
)

// ConsentCookie skips the cookie consent interstitial served to clients
// without a session.
const ConsentCookie = "CONSENT=PENDING+987; SOCS=CAESHAgBEhIaAB"

// Option configures a WebSearcher or ImageSearcher.
type Option func(*options)

type options struct {
	searchURL   string
	language    string
	region      string
	maxPages    int
	concurrency int
	limiter     sift.DomainLimiter
}

// WithSearchURL overrides DefaultSearchURL.
func WithSearchURL(u string) Option {
	return func(o *options) { o.searchURL = u }
}

// WithLanguage sets the interface language (hl parameter).
func WithLanguage(lang string) Option {
	return func(o *options) { o.language = lang }
}

// WithRegion sets the result region (gl parameter).
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithMaxPages caps the number of result pages read per search.
func WithMaxPages(n int) Option {
	return func(o *options) { o.maxPages = n }
}

// WithConcurrency bounds parallel metadata fetches.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// WithDomainLimiter paces metadata fetches per result host.
func WithDomainLimiter(l sift.DomainLimiter) Option {
	return func(o *options) { o.limiter = l }
}

func newOptions(opts []Option) options {
	o := options{
		searchURL:   DefaultSearchURL,
		language:    DefaultLanguage,
		region:      DefaultRegion,
		maxPages:    DefaultMaxPages,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxPages <= 0 {
		o.maxPages = 1
	}
	return o
}

func searchRequest(searchURL string, query url.Values) *sift.FetchRequest {
	return &sift.FetchRequest{
		URL:    searchURL,
		Query:  query,
		Header: http.Header{"Cookie": {ConsentCookie}},
	}
}
