// Package crawl coordinates page retrieval: ordered parallel fetching
// with per-domain pacing, and single-page crawling into clean text or
// Markdown.
package crawl

import (
	"context"

	"github.com/fwojciec/sift"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds in-flight fetches when none is given.
const DefaultConcurrency = 10

// Fetched holds the outcome of fetching one URL in a batch.
// Exactly one of Result and Err is set.
type Fetched struct {
	URL    string
	Result *sift.FetchResult
	Err    error
}

// FetchAll retrieves every URL with at most concurrency requests in
// flight and returns the outcomes in input order. Failures stay local to
// their slot: a transport error, a non-2xx status or a canceled wait on
// limiter is recorded in Fetched.Err and the rest of the batch proceeds.
// A nil limiter disables pacing.
func FetchAll(ctx context.Context, fetcher sift.Fetcher, limiter sift.DomainLimiter, urls []string, concurrency int) []Fetched {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Fetched, len(urls))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			results[i] = fetchOne(ctx, fetcher, limiter, u)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func fetchOne(ctx context.Context, fetcher sift.Fetcher, limiter sift.DomainLimiter, u string) Fetched {
	out := Fetched{URL: u}

	if limiter != nil {
		if err := limiter.Wait(ctx, Host(u)); err != nil {
			out.Err = sift.WrapError(sift.EFETCH, err, "rate limit wait for %s", u)
			return out
		}
	}

	res, err := fetcher.Fetch(ctx, &sift.FetchRequest{URL: u})
	if err != nil {
		out.Err = err
		return out
	}
	if err := res.Check(); err != nil {
		out.Err = err
		return out
	}
	out.Result = res
	return out
}
