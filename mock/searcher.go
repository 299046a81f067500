package mock

import (
	"context"

	"github.com/fwojciec/sift"
)

var (
	_ sift.VideoSearcher     = (*VideoSearcher)(nil)
	_ sift.WebSearcher       = (*WebSearcher)(nil)
	_ sift.ImageSearcher     = (*ImageSearcher)(nil)
	_ sift.TranscriptService = (*TranscriptService)(nil)
)

// VideoSearcher is a mock implementation of sift.VideoSearcher.
type VideoSearcher struct {
	SearchVideosFn func(ctx context.Context, query string, maxResults int) ([]*sift.Video, error)
}

func (s *VideoSearcher) SearchVideos(ctx context.Context, query string, maxResults int) ([]*sift.Video, error) {
	return s.SearchVideosFn(ctx, query, maxResults)
}

// WebSearcher is a mock implementation of sift.WebSearcher.
type WebSearcher struct {
	SearchWebFn func(ctx context.Context, query string, numResults int) ([]*sift.PageMetadata, error)
}

func (s *WebSearcher) SearchWeb(ctx context.Context, query string, numResults int) ([]*sift.PageMetadata, error) {
	return s.SearchWebFn(ctx, query, numResults)
}

// ImageSearcher is a mock implementation of sift.ImageSearcher.
type ImageSearcher struct {
	SearchImagesFn func(ctx context.Context, query string, numImages int) ([]string, error)
}

func (s *ImageSearcher) SearchImages(ctx context.Context, query string, numImages int) ([]string, error) {
	return s.SearchImagesFn(ctx, query, numImages)
}

// TranscriptService is a mock implementation of sift.TranscriptService.
type TranscriptService struct {
	FetchTranscriptFn func(ctx context.Context, videoID string, languages []string) ([]*sift.TranscriptSegment, error)
}

func (s *TranscriptService) FetchTranscript(ctx context.Context, videoID string, languages []string) ([]*sift.TranscriptSegment, error) {
	return s.FetchTranscriptFn(ctx, videoID, languages)
}
