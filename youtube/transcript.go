package youtube

import (
	"context"
	"html"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sift"
)

// DefaultLanguages is used when FetchTranscript is called without languages.
var DefaultLanguages = []string{"ko"}

// CaptionTracksPath leads from ytInitialPlayerResponse to its caption tracks.
var CaptionTracksPath = sift.Keys("captions", "playerCaptionsTracklistRenderer", "captionTracks")

// Ensure TranscriptService implements sift.TranscriptService at compile time.
var _ sift.TranscriptService = (*TranscriptService)(nil)

// TranscriptService fetches captions by reading the caption track list
// embedded in a watch page and downloading the timed-text XML.
type TranscriptService struct {
	fetcher  sift.Fetcher
	watchURL string
}

// NewTranscriptService creates a new TranscriptService.
func NewTranscriptService(fetcher sift.Fetcher, opts ...Option) *TranscriptService {
	o := newOptions(opts)
	return &TranscriptService{fetcher: fetcher, watchURL: o.watchURL}
}

// captionTrack is one entry of captionTracks.
type captionTrack struct {
	BaseURL      string
	LanguageCode string
	Kind         string
}

// FetchTranscript returns the caption segments of videoID in the first
// language from languages that has a track.
func (s *TranscriptService) FetchTranscript(ctx context.Context, videoID string, languages []string) ([]*sift.TranscriptSegment, error) {
	if videoID == "" {
		return nil, sift.Errorf(sift.EINVALID, "video ID required")
	}
	if len(languages) == 0 {
		languages = DefaultLanguages
	}

	res, err := s.fetcher.Fetch(ctx, &sift.FetchRequest{
		URL:   s.watchURL,
		Query: url.Values{"v": []string{videoID}},
	})
	if err != nil {
		return nil, err
	}
	if err := res.Check(); err != nil {
		return nil, err
	}

	player, err := sift.ExtractEmbedded(res.Body, InitialPlayerResponseVar)
	if err != nil {
		return nil, err
	}

	tracks, err := captionTracks(player)
	if err != nil {
		return nil, err
	}

	track, ok := pickTrack(tracks, languages)
	if !ok {
		return nil, sift.Errorf(sift.ENOTFOUND, "no transcript for video %s in languages %v", videoID, languages)
	}

	xmlRes, err := s.fetcher.Fetch(ctx, &sift.FetchRequest{URL: track.BaseURL})
	if err != nil {
		return nil, err
	}
	if err := xmlRes.Check(); err != nil {
		return nil, err
	}

	return ParseTimedText(xmlRes.Body)
}

// captionTracks reads the caption track list. A response without a
// captions section has no tracks.
func captionTracks(player sift.Value) ([]captionTrack, error) {
	obj, err := sift.AsObject(player, InitialPlayerResponseVar)
	if err != nil {
		return nil, resultParseError(err)
	}
	if !obj.Has("captions") {
		return nil, nil
	}

	arr, err := sift.ResolveArray(player, CaptionTracksPath)
	if err != nil {
		return nil, resultParseError(err)
	}

	tracks := make([]captionTrack, 0, len(arr))
	for _, v := range arr {
		baseURL, err := sift.ResolveString(v, sift.Keys("baseUrl"))
		if err != nil {
			return nil, resultParseError(err)
		}
		lang, err := sift.ResolveString(v, sift.Keys("languageCode"))
		if err != nil {
			return nil, resultParseError(err)
		}
		kind, _ := sift.ResolveString(v, sift.Keys("kind"))
		tracks = append(tracks, captionTrack{BaseURL: baseURL, LanguageCode: lang, Kind: kind})
	}
	return tracks, nil
}

// pickTrack selects a track by language preference. Within a language,
// manually created tracks win over auto-generated ("asr") ones.
func pickTrack(tracks []captionTrack, languages []string) (captionTrack, bool) {
	for _, lang := range languages {
		var auto *captionTrack
		for i, t := range tracks {
			if t.LanguageCode != lang {
				continue
			}
			if t.Kind != "asr" {
				return t, true
			}
			if auto == nil {
				auto = &tracks[i]
			}
		}
		if auto != nil {
			return *auto, true
		}
	}
	return captionTrack{}, false
}

// ParseTimedText parses YouTube timed-text XML. Both the classic
// <transcript><text start dur> layout (seconds) and the srv3
// <timedtext><body><p t d> layout (milliseconds) are accepted.
// Start and duration are rounded to two decimals; empty lines are dropped.
func ParseTimedText(data string) ([]*sift.TranscriptSegment, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(data); err != nil {
		return nil, sift.WrapError(sift.EMALFORMED, err, "invalid timed-text XML")
	}
	root := doc.Root()
	if root == nil {
		return nil, sift.Errorf(sift.EMALFORMED, "empty timed-text document")
	}

	var (
		lines    []*etree.Element
		startKey = "start"
		durKey   = "dur"
		scale    = 1.0
	)
	switch root.Tag {
	case "transcript":
		lines = root.SelectElements("text")
	case "timedtext":
		lines = root.FindElements("./body/p")
		startKey, durKey, scale = "t", "d", 1000
	default:
		return nil, sift.Errorf(sift.EMALFORMED, "unexpected timed-text root %q", root.Tag)
	}

	segments := make([]*sift.TranscriptSegment, 0, len(lines))
	for _, el := range lines {
		text := strings.TrimSpace(html.UnescapeString(innerText(el)))
		if text == "" {
			continue
		}
		segments = append(segments, &sift.TranscriptSegment{
			Start:    round2(attrFloat(el, startKey) / scale),
			Duration: round2(attrFloat(el, durKey) / scale),
			Text:     text,
		})
	}
	return segments, nil
}

// innerText concatenates all character data below el.
func innerText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			b.WriteString(innerText(t))
		}
	}
	return b.String()
}

func attrFloat(el *etree.Element, key string) float64 {
	f, err := strconv.ParseFloat(el.SelectAttrValue(key, "0"), 64)
	if err != nil {
		return 0
	}
	return f
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
