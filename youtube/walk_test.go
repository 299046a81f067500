package youtube_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/youtube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s string) sift.Value {
	t.Helper()
	v, err := sift.ParseValue(s)
	require.NoError(t, err)
	return v
}

func ids(videos []*sift.Video) []string {
	out := make([]string, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.VideoID)
	}
	return out
}

func TestWalkVideos(t *testing.T) {
	t.Parallel()

	t.Run("returns fewer than limit when page has fewer videos", func(t *testing.T) {
		t.Parallel()

		data := initialData(t, section(simpleVideos(3)...))

		videos, err := youtube.WalkVideos(parse(t, data), 5)

		require.NoError(t, err)
		assert.Equal(t, []string{"v0", "v1", "v2"}, ids(videos))
	})

	t.Run("stops at limit without inspecting later items", func(t *testing.T) {
		t.Parallel()

		items := simpleVideos(3)
		for i := 0; i < 7; i++ {
			// Malformed: no videoId, title is a number.
			items = append(items, map[string]any{"videoRenderer": map[string]any{"title": 1}})
		}
		data := initialData(t, section(items...), "not even an object")

		videos, err := youtube.WalkVideos(parse(t, data), 3)

		require.NoError(t, err)
		assert.Equal(t, []string{"v0", "v1", "v2"}, ids(videos))
	})

	t.Run("stops across section boundaries", func(t *testing.T) {
		t.Parallel()

		data := initialData(t,
			section(simpleVideos(2)...),
			section(videoItem("x1", []string{"x"}, "1:00"), videoItem("x2", []string{"y"}, "2:00")),
		)

		videos, err := youtube.WalkVideos(parse(t, data), 3)

		require.NoError(t, err)
		assert.Equal(t, []string{"v0", "v1", "x1"}, ids(videos))
	})

	t.Run("extracts fields of a video item", func(t *testing.T) {
		t.Parallel()

		data := initialData(t, section(videoItem("abc123", []string{"아이유 ", "콘서트", " LIVE clip"}, "12:34")))

		videos, err := youtube.WalkVideos(parse(t, data), 5)

		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, &sift.Video{
			Title:        "아이유 콘서트 LIVE clip",
			ThumbnailURL: "https://i.ytimg.com/vi/abc123/hqdefault.jpg",
			Duration:     "12:34",
			VideoID:      "abc123",
		}, videos[0])
	})

	t.Run("duration defaults to LIVE when absent", func(t *testing.T) {
		t.Parallel()

		noSimpleText := videoItem("b", []string{"b"}, "")
		noSimpleText["videoRenderer"].(map[string]any)["lengthText"] = map[string]any{"accessibility": map[string]any{}}
		data := initialData(t, section(videoItem("a", []string{"a"}, ""), noSimpleText, videoItem("c", []string{"c"}, "0:59")))

		videos, err := youtube.WalkVideos(parse(t, data), 5)

		require.NoError(t, err)
		require.Len(t, videos, 3)
		assert.Equal(t, sift.LiveDuration, videos[0].Duration)
		assert.Equal(t, sift.LiveDuration, videos[1].Duration)
		assert.Equal(t, "0:59", videos[2].Duration)
	})

	t.Run("skips non-video items and sections without items", func(t *testing.T) {
		t.Parallel()

		data := initialData(t,
			map[string]any{"continuationItemRenderer": map[string]any{}},
			map[string]any{"itemSectionRenderer": map[string]any{}},
			section(
				map[string]any{"shelfRenderer": map[string]any{"title": "Shorts"}},
				videoItem("a", []string{"a"}, "1:00"),
				map[string]any{"channelRenderer": map[string]any{"channelId": "c"}},
				videoItem("b", []string{"b"}, "2:00"),
			),
		)

		videos, err := youtube.WalkVideos(parse(t, data), 5)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ids(videos))
	})

	t.Run("missing video id fails the whole walk", func(t *testing.T) {
		t.Parallel()

		broken := videoItem("x", []string{"x"}, "1:00")
		delete(broken["videoRenderer"].(map[string]any), "videoId")
		data := initialData(t, section(videoItem("a", []string{"a"}, "1:00"), broken))

		videos, err := youtube.WalkVideos(parse(t, data), 5)

		require.Error(t, err)
		assert.Nil(t, videos)
		assert.Equal(t, sift.ERESULTPARSE, sift.ErrorCode(err))

		var perr *sift.PathError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "videoId", perr.Path)
	})

	t.Run("empty thumbnail list fails the walk", func(t *testing.T) {
		t.Parallel()

		broken := videoItem("x", []string{"x"}, "1:00")
		broken["videoRenderer"].(map[string]any)["thumbnail"] = map[string]any{"thumbnails": []any{}}
		data := initialData(t, section(broken))

		_, err := youtube.WalkVideos(parse(t, data), 5)

		require.Error(t, err)
		assert.Equal(t, sift.ERESULTPARSE, sift.ErrorCode(err))
	})

	t.Run("broken fixed path returns ERESULTPARSE", func(t *testing.T) {
		t.Parallel()

		data := `{"contents":{"twoColumnSearchResultsRenderer":{"primaryContents":{}}}}`

		_, err := youtube.WalkVideos(parse(t, data), 5)

		require.Error(t, err)
		assert.Equal(t, sift.ERESULTPARSE, sift.ErrorCode(err))
		var perr *sift.PathError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "contents.twoColumnSearchResultsRenderer.primaryContents.sectionListRenderer", perr.Path)
	})

	t.Run("section of wrong shape returns ERESULTPARSE", func(t *testing.T) {
		t.Parallel()

		data := initialData(t, map[string]any{"itemSectionRenderer": map[string]any{"contents": "nope"}})

		_, err := youtube.WalkVideos(parse(t, data), 5)

		require.Error(t, err)
		assert.Equal(t, sift.ERESULTPARSE, sift.ErrorCode(err))
	})

	t.Run("zero limit returns empty without walking", func(t *testing.T) {
		t.Parallel()

		videos, err := youtube.WalkVideos(sift.Null{}, 0)

		require.NoError(t, err)
		assert.Empty(t, videos)
	})
}
