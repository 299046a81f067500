package slog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/mock"
	siftslog "github.com/fwojciec/sift/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingVideoSearcher(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	inner := &mock.VideoSearcher{
		SearchVideosFn: func(_ context.Context, query string, maxResults int) ([]*sift.Video, error) {
			return []*sift.Video{{VideoID: "a"}, {VideoID: "b"}}, nil
		},
	}

	videos, err := siftslog.NewLoggingVideoSearcher(inner, logger).SearchVideos(context.Background(), "lofi", 5)

	require.NoError(t, err)
	assert.Len(t, videos, 2)
	output := buf.String()
	assert.Contains(t, output, `msg="video search"`)
	assert.Contains(t, output, "query=lofi")
	assert.Contains(t, output, "max=5")
	assert.Contains(t, output, "count=2")
}

func TestLoggingWebSearcher(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	inner := &mock.WebSearcher{
		SearchWebFn: func(context.Context, string, int) ([]*sift.PageMetadata, error) {
			return nil, errors.New("HTTP 429")
		},
	}

	_, err := siftslog.NewLoggingWebSearcher(inner, logger).SearchWeb(context.Background(), "golang", 3)

	require.Error(t, err)
	output := buf.String()
	assert.Contains(t, output, `msg="web search"`)
	assert.Contains(t, output, "count=0")
	assert.Contains(t, output, `err="HTTP 429"`)
}

func TestLoggingImageSearcher(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	inner := &mock.ImageSearcher{
		SearchImagesFn: func(context.Context, string, int) ([]string, error) {
			return []string{"https://img.test/1.jpg"}, nil
		},
	}

	images, err := siftslog.NewLoggingImageSearcher(inner, logger).SearchImages(context.Background(), "cats", 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.test/1.jpg"}, images)
	assert.Contains(t, buf.String(), `msg="image search"`)
	assert.Contains(t, buf.String(), "count=1")
}

func TestLoggingTranscriptService(t *testing.T) {
	t.Parallel()

	logger, buf := newLogger()
	inner := &mock.TranscriptService{
		FetchTranscriptFn: func(_ context.Context, videoID string, languages []string) ([]*sift.TranscriptSegment, error) {
			return []*sift.TranscriptSegment{{Text: "hi"}}, nil
		},
	}

	segments, err := siftslog.NewLoggingTranscriptService(inner, logger).
		FetchTranscript(context.Background(), "abc123", []string{"ko", "en"})

	require.NoError(t, err)
	assert.Len(t, segments, 1)
	output := buf.String()
	assert.Contains(t, output, "msg=transcript")
	assert.Contains(t, output, "video=abc123")
	assert.Contains(t, output, "segments=1")
}
