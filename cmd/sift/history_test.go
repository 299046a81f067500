package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/sift"
	main "github.com/fwojciec/sift/cmd/sift"
	"github.com/fwojciec/sift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists archived pages", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		var gotFilter sift.PageFilter
		deps.Pages = &mock.PageService{
			FindPagesFn: func(_ context.Context, filter sift.PageFilter) ([]*sift.ArchivedPage, error) {
				gotFilter = filter
				return []*sift.ArchivedPage{{
					ID:        "page-1",
					URL:       "https://example.com/",
					Title:     "Example",
					Format:    sift.FormatText,
					FetchedAt: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
				}}, nil
			},
		}

		err := (&main.HistoryCmd{URL: "https://example.com/", Limit: 10}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.URL)
		assert.Equal(t, "https://example.com/", *gotFilter.URL)
		assert.Equal(t, 10, gotFilter.Limit)
		output := stdout.String()
		assert.Contains(t, output, "page-1")
		assert.Contains(t, output, "2025-03-01 09:30")
		assert.Contains(t, output, "https://example.com/")
		assert.Contains(t, output, "Example")
	})

	t.Run("explains empty archive", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Pages = &mock.PageService{
			FindPagesFn: func(_ context.Context, filter sift.PageFilter) ([]*sift.ArchivedPage, error) {
				assert.Nil(t, filter.URL)
				return []*sift.ArchivedPage{}, nil
			},
		}

		err := (&main.HistoryCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "sift crawl --save")
	})
}
