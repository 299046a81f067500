package youtube_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// videoItem builds a videoRenderer result item.
func videoItem(id string, titleRuns []string, duration string) map[string]any {
	runs := make([]any, 0, len(titleRuns))
	for _, r := range titleRuns {
		runs = append(runs, map[string]any{"text": r})
	}
	renderer := map[string]any{
		"videoId": id,
		"title":   map[string]any{"runs": runs},
		"thumbnail": map[string]any{"thumbnails": []any{
			map[string]any{"url": "https://i.ytimg.com/vi/" + id + "/default.jpg", "width": 120},
			map[string]any{"url": "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg", "width": 480},
		}},
	}
	if duration != "" {
		renderer["lengthText"] = map[string]any{"simpleText": duration}
	}
	return map[string]any{"videoRenderer": renderer}
}

// simpleVideos returns n video items with ids v0..v(n-1).
func simpleVideos(n int) []any {
	items := make([]any, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("v%d", i)
		items = append(items, videoItem(id, []string{"Video ", id}, "3:2"+fmt.Sprint(i%10)))
	}
	return items
}

// section wraps items in an itemSectionRenderer.
func section(items ...any) map[string]any {
	return map[string]any{"itemSectionRenderer": map[string]any{"contents": items}}
}

// initialData builds a ytInitialData JSON document from sections.
func initialData(t *testing.T, sections ...any) string {
	t.Helper()
	data := map[string]any{
		"contents": map[string]any{
			"twoColumnSearchResultsRenderer": map[string]any{
				"primaryContents": map[string]any{
					"sectionListRenderer": map[string]any{
						"contents": sections,
					},
				},
			},
		},
	}
	b, err := json.Marshal(data)
	require.NoError(t, err)
	return string(b)
}

// resultsPage embeds payload the way the search results page does.
func resultsPage(payload string) string {
	return `<!DOCTYPE html><html><head><title>YouTube</title></head><body>` +
		`<script nonce="x">var ytInitialData = ` + payload + `;</script>` +
		`<script>var ytInitialPlayerResponse = null;</script></body></html>`
}
