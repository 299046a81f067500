// Package youtube implements sift.VideoSearcher and sift.TranscriptService
// by reading the JSON state YouTube embeds in its HTML pages.
package youtube

import (
	"context"
	"net/url"

	"github.com/fwojciec/sift"
)

// Default endpoints.
const (
	DefaultSearchURL = "https://www.youtube.com/results"
	DefaultWatchURL  = "https://www.youtube.com/watch"
)

// Embedded variable names.
const (
	InitialDataVar           = "ytInitialData"
	InitialPlayerResponseVar = "ytInitialPlayerResponse"
)

// Ensure VideoSearcher implements sift.VideoSearcher at compile time.
var _ sift.VideoSearcher = (*VideoSearcher)(nil)

// VideoSearcher searches YouTube by scraping the results page.
type VideoSearcher struct {
	fetcher   sift.Fetcher
	searchURL string
}

// Option configures a VideoSearcher or TranscriptService.
type Option func(*options)

type options struct {
	searchURL string
	watchURL  string
}

// WithSearchURL overrides DefaultSearchURL.
func WithSearchURL(u string) Option {
	return func(o *options) { o.searchURL = u }
}

// WithWatchURL overrides DefaultWatchURL.
func WithWatchURL(u string) Option {
	return func(o *options) { o.watchURL = u }
}

func newOptions(opts []Option) options {
	o := options{searchURL: DefaultSearchURL, watchURL: DefaultWatchURL}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewVideoSearcher creates a new VideoSearcher.
func NewVideoSearcher(fetcher sift.Fetcher, opts ...Option) *VideoSearcher {
	o := newOptions(opts)
	return &VideoSearcher{fetcher: fetcher, searchURL: o.searchURL}
}

// SearchVideos returns at most maxResults videos for query in page order.
func (s *VideoSearcher) SearchVideos(ctx context.Context, query string, maxResults int) ([]*sift.Video, error) {
	if maxResults < 0 {
		return nil, sift.Errorf(sift.EINVALID, "max results must not be negative")
	}
	if maxResults == 0 {
		return []*sift.Video{}, nil
	}

	res, err := s.fetcher.Fetch(ctx, &sift.FetchRequest{
		URL:   s.searchURL,
		Query: url.Values{"search_query": []string{query}},
	})
	if err != nil {
		return nil, err
	}
	if err := res.Check(); err != nil {
		return nil, err
	}

	data, err := sift.ExtractEmbedded(res.Body, InitialDataVar)
	if err != nil {
		return nil, err
	}

	return WalkVideos(data, maxResults)
}
