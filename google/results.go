package google

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ResultBlockSelector matches the containers of organic results across
// the desktop and basic HTML layouts.
var ResultBlockSelector = "div.g, div.ezO2md, div.MjjYud"

// ParseResultLinks returns the organic result URLs of a Google result
// page in page order. Redirect links of the form /url?q=TARGET are
// resolved to TARGET; absolute links count only inside a result block.
// Links to Google hosts (cache, maps, account pages) are skipped.
// Duplicates are kept.
func ParseResultLinks(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		target, ok := resultTarget(href)
		if !ok {
			return
		}
		if !strings.HasPrefix(href, "/url?") && a.Closest(ResultBlockSelector).Length() == 0 {
			return
		}
		links = append(links, target)
	})
	return links
}

// resultTarget returns the destination of a result anchor href.
func resultTarget(href string) (string, bool) {
	if rest, ok := strings.CutPrefix(href, "/url?"); ok {
		q, err := url.ParseQuery(rest)
		if err != nil {
			return "", false
		}
		href = q.Get("q")
	}

	u, err := url.Parse(href)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	if isGoogleHost(u.Hostname()) {
		return "", false
	}
	return href, true
}

func isGoogleHost(host string) bool {
	host = strings.ToLower(host)
	for _, label := range strings.Split(host, ".") {
		if label == "google" || label == "googleusercontent" {
			return true
		}
	}
	return false
}
