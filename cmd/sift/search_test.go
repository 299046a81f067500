package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/sift"
	main "github.com/fwojciec/sift/cmd/sift"
	"github.com/fwojciec/sift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: stderr}, stdout, stderr
}

func TestVideosCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints videos as JSON", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Videos = &mock.VideoSearcher{
			SearchVideosFn: func(_ context.Context, query string, maxResults int) ([]*sift.Video, error) {
				assert.Equal(t, "lofi", query)
				assert.Equal(t, 3, maxResults)
				return []*sift.Video{{Title: "Lofi <beats>", ThumbnailURL: "https://i.ytimg.com/x.jpg", Duration: "LIVE", VideoID: "jfKfPfyJRdk"}}, nil
			},
		}

		err := (&main.VideosCmd{Query: "lofi", Num: 3}).Run(deps)

		require.NoError(t, err)
		var got []map[string]string
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, []map[string]string{{
			"title":     "Lofi <beats>",
			"thumbnail": "https://i.ytimg.com/x.jpg",
			"duration":  "LIVE",
			"videoId":   "jfKfPfyJRdk",
		}}, got)
		assert.Contains(t, stdout.String(), "<beats>")
	})

	t.Run("reports errors on stderr", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps()
		deps.Videos = &mock.VideoSearcher{
			SearchVideosFn: func(context.Context, string, int) ([]*sift.Video, error) {
				return nil, sift.Errorf(sift.ELOCATOR, "ytInitialData not found")
			},
		}

		err := (&main.VideosCmd{Query: "q", Num: 5}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "error: ytInitialData not found\n", stderr.String())
		assert.Empty(t, stdout.String())
	})
}

func TestWebCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := newDeps()
	title := "Example"
	deps.Web = &mock.WebSearcher{
		SearchWebFn: func(context.Context, string, int) ([]*sift.PageMetadata, error) {
			return []*sift.PageMetadata{{
				Title: &title,
				Meta:  map[string]string{"og:title": "Example"},
				Text:  "Example Domain",
				URL:   "https://example.com/",
			}}, nil
		},
	}

	err := (&main.WebCmd{Query: "example", Num: 5}).Run(deps)

	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Example", got[0]["title"])
	assert.Equal(t, map[string]any{"og:title": "Example"}, got[0]["meta"])
	assert.Equal(t, "Example Domain", got[0]["text"])
	assert.Equal(t, "https://example.com/", got[0]["url"])
}

func TestImagesCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := newDeps()
	deps.Images = &mock.ImageSearcher{
		SearchImagesFn: func(context.Context, string, int) ([]string, error) {
			return []string{}, nil
		},
	}

	err := (&main.ImagesCmd{Query: "nothing", Num: 5}).Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout.String())
}
