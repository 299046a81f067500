package sift

import "context"

// LiveDuration replaces the duration of results that carry none, which
// marks a live stream.
const LiveDuration = "LIVE"

// Video is a single video search result.
type Video struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail"`
	Duration     string `json:"duration"`
	VideoID      string `json:"videoId"`
}

// VideoSearcher searches a video site.
type VideoSearcher interface {
	// SearchVideos returns at most maxResults videos in page order.
	// Returns ELOCATOR, EMALFORMED or ERESULTPARSE when the result page
	// cannot be interpreted.
	SearchVideos(ctx context.Context, query string, maxResults int) ([]*Video, error)
}

// TranscriptSegment is a single timed caption line.
type TranscriptSegment struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// TranscriptService retrieves video captions.
type TranscriptService interface {
	// FetchTranscript returns the caption track of a video in the first
	// available language from languages.
	// Returns ENOTFOUND if no track matches.
	FetchTranscript(ctx context.Context, videoID string, languages []string) ([]*TranscriptSegment, error)
}
