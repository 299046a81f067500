package youtube

import (
	"strings"

	"github.com/fwojciec/sift"
)

// SectionsPath leads from the root of ytInitialData to the list of result
// sections on a search results page.
var SectionsPath = sift.Keys(
	"contents",
	"twoColumnSearchResultsRenderer",
	"primaryContents",
	"sectionListRenderer",
	"contents",
)

// Keys used inside a result section.
const (
	SectionKey = "itemSectionRenderer"
	VideoKey   = "videoRenderer"
)

// Paths inside a videoRenderer entry.
var (
	VideoIDPath   = sift.Keys("videoId")
	TitleRunsPath = sift.Keys("title", "runs")
	ThumbnailPath = sift.Path{sift.Key("thumbnail"), sift.Key("thumbnails"), sift.Last(), sift.Key("url")}
	DurationKey   = "lengthText"
)

// WalkVideos extracts at most limit videos from a parsed ytInitialData
// tree, in document order. Walking stops as soon as limit is reached, so
// entries past the limit are never inspected.
//
// Sections without items and items that are not videos are skipped. Any
// other deviation from the expected shape returns ERESULTPARSE and no
// videos.
func WalkVideos(root sift.Value, limit int) ([]*sift.Video, error) {
	videos := []*sift.Video{}
	if limit <= 0 {
		return videos, nil
	}

	sections, err := sift.ResolveArray(root, SectionsPath)
	if err != nil {
		return nil, resultParseError(err)
	}

	for _, section := range sections {
		items, err := sectionItems(section)
		if err != nil {
			return nil, resultParseError(err)
		}

		for _, item := range items {
			obj, err := sift.AsObject(item, "item")
			if err != nil {
				return nil, resultParseError(err)
			}
			renderer, ok := obj.Get(VideoKey)
			if !ok {
				continue
			}

			v, err := parseVideo(renderer)
			if err != nil {
				return nil, resultParseError(err)
			}
			videos = append(videos, v)
			if len(videos) >= limit {
				return videos, nil
			}
		}
	}

	return videos, nil
}

// sectionItems returns the items of a section. A section without an
// item list has no items.
func sectionItems(section sift.Value) (sift.Array, error) {
	obj, err := sift.AsObject(section, "section")
	if err != nil {
		return nil, err
	}
	isr, ok := obj.Get(SectionKey)
	if !ok {
		return nil, nil
	}
	isrObj, err := sift.AsObject(isr, SectionKey)
	if err != nil {
		return nil, err
	}
	contents, ok := isrObj.Get("contents")
	if !ok {
		return nil, nil
	}
	return sift.AsArray(contents, SectionKey+".contents")
}

func parseVideo(renderer sift.Value) (*sift.Video, error) {
	id, err := sift.ResolveString(renderer, VideoIDPath)
	if err != nil {
		return nil, err
	}

	title, err := joinRuns(renderer)
	if err != nil {
		return nil, err
	}

	thumb, err := sift.ResolveString(renderer, ThumbnailPath)
	if err != nil {
		return nil, err
	}

	duration, err := videoDuration(renderer)
	if err != nil {
		return nil, err
	}

	return &sift.Video{
		Title:        title,
		ThumbnailURL: thumb,
		Duration:     duration,
		VideoID:      id,
	}, nil
}

// joinRuns concatenates the text of every title run.
func joinRuns(renderer sift.Value) (string, error) {
	runs, err := sift.ResolveArray(renderer, TitleRunsPath)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i := range runs {
		text, err := sift.ResolveString(renderer, sift.Path{sift.Key("title"), sift.Key("runs"), sift.Index(i), sift.Key("text")})
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

// videoDuration reads lengthText.simpleText. Live streams carry no
// duration and get sift.LiveDuration.
func videoDuration(renderer sift.Value) (string, error) {
	obj, err := sift.AsObject(renderer, VideoKey)
	if err != nil {
		return "", err
	}
	lt, ok := obj.Get(DurationKey)
	if !ok {
		return sift.LiveDuration, nil
	}
	ltObj, err := sift.AsObject(lt, DurationKey)
	if err != nil {
		return "", err
	}
	simple, ok := ltObj.Get("simpleText")
	if !ok {
		return sift.LiveDuration, nil
	}
	return sift.AsString(simple, DurationKey+".simpleText")
}

func resultParseError(err error) error {
	return sift.WrapError(sift.ERESULTPARSE, err, "cannot read search results: %v", err)
}
