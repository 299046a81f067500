package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sift"
)

var (
	_ sift.VideoSearcher     = (*LoggingVideoSearcher)(nil)
	_ sift.WebSearcher       = (*LoggingWebSearcher)(nil)
	_ sift.ImageSearcher     = (*LoggingImageSearcher)(nil)
	_ sift.TranscriptService = (*LoggingTranscriptService)(nil)
)

// LoggingVideoSearcher wraps a VideoSearcher with logging.
type LoggingVideoSearcher struct {
	next   sift.VideoSearcher
	logger *slog.Logger
}

// NewLoggingVideoSearcher creates a new LoggingVideoSearcher.
func NewLoggingVideoSearcher(next sift.VideoSearcher, logger *slog.Logger) *LoggingVideoSearcher {
	return &LoggingVideoSearcher{next: next, logger: logger}
}

func (s *LoggingVideoSearcher) SearchVideos(ctx context.Context, query string, maxResults int) (videos []*sift.Video, err error) {
	defer func(begin time.Time) {
		s.logger.Info("video search",
			"query", query,
			"max", maxResults,
			"count", len(videos),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchVideos(ctx, query, maxResults)
}

// LoggingWebSearcher wraps a WebSearcher with logging.
type LoggingWebSearcher struct {
	next   sift.WebSearcher
	logger *slog.Logger
}

// NewLoggingWebSearcher creates a new LoggingWebSearcher.
func NewLoggingWebSearcher(next sift.WebSearcher, logger *slog.Logger) *LoggingWebSearcher {
	return &LoggingWebSearcher{next: next, logger: logger}
}

func (s *LoggingWebSearcher) SearchWeb(ctx context.Context, query string, numResults int) (results []*sift.PageMetadata, err error) {
	defer func(begin time.Time) {
		s.logger.Info("web search",
			"query", query,
			"max", numResults,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchWeb(ctx, query, numResults)
}

// LoggingImageSearcher wraps an ImageSearcher with logging.
type LoggingImageSearcher struct {
	next   sift.ImageSearcher
	logger *slog.Logger
}

// NewLoggingImageSearcher creates a new LoggingImageSearcher.
func NewLoggingImageSearcher(next sift.ImageSearcher, logger *slog.Logger) *LoggingImageSearcher {
	return &LoggingImageSearcher{next: next, logger: logger}
}

func (s *LoggingImageSearcher) SearchImages(ctx context.Context, query string, numImages int) (images []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("image search",
			"query", query,
			"max", numImages,
			"count", len(images),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchImages(ctx, query, numImages)
}

// LoggingTranscriptService wraps a TranscriptService with logging.
type LoggingTranscriptService struct {
	next   sift.TranscriptService
	logger *slog.Logger
}

// NewLoggingTranscriptService creates a new LoggingTranscriptService.
func NewLoggingTranscriptService(next sift.TranscriptService, logger *slog.Logger) *LoggingTranscriptService {
	return &LoggingTranscriptService{next: next, logger: logger}
}

func (s *LoggingTranscriptService) FetchTranscript(ctx context.Context, videoID string, languages []string) (segments []*sift.TranscriptSegment, err error) {
	defer func(begin time.Time) {
		s.logger.Info("transcript",
			"video", videoID,
			"languages", languages,
			"segments", len(segments),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchTranscript(ctx, videoID, languages)
}
