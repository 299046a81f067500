package main

import (
	"time"

	"github.com/fwojciec/sift"
)

// crawlOutput mirrors the crawl response body.
type crawlOutput struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	URL    string `json:"url"`
	ID     string `json:"id,omitempty"`
}

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	page, err := deps.Crawler.CrawlPage(deps.Ctx, c.URL)
	if err != nil {
		return fail(deps, err)
	}

	archived := &sift.ArchivedPage{
		URL:       page.URL,
		Title:     page.Title,
		Text:      page.Text,
		Format:    sift.Format(c.Format),
		FetchedAt: time.Now().UTC(),
	}

	if c.Save {
		if err := deps.Pages.CreatePage(deps.Ctx, archived); err != nil {
			return fail(deps, err)
		}
	}

	if c.Out != "" {
		if err := deps.NewWriter(c.Out).WritePage(deps.Ctx, archived); err != nil {
			return fail(deps, err)
		}
	}

	return writeJSON(deps.Stdout, crawlOutput{
		Status: "success",
		Title:  page.Title,
		Text:   page.Text,
		URL:    page.URL,
		ID:     archived.ID,
	})
}
