package mock

import (
	"context"

	"github.com/fwojciec/sift"
)

var _ sift.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sift.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, req *sift.FetchRequest) (*sift.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, req *sift.FetchRequest) (*sift.FetchResult, error) {
	return f.FetchFn(ctx, req)
}
