package main

import (
	"fmt"

	"github.com/fwojciec/sift"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := sift.PageFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, filter)
	if err != nil {
		return fail(deps, err)
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages archived. Use 'sift crawl --save' to archive one.")
		return nil
	}

	for _, p := range pages {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-8s  %s  %s\n",
			p.ID, p.FetchedAt.Format("2006-01-02 15:04"), p.Format, p.URL, p.Title)
	}
	return nil
}
