package sift

import (
	"context"
	"net/http"
	"net/url"
)

// DefaultUserAgent is a realistic desktop browser identity. Search pages
// reject requests carrying a default HTTP client identity.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// FetchRequest describes a single GET request.
type FetchRequest struct {
	URL string

	// Query parameters merged into the URL's existing query string.
	Query url.Values

	// Extra headers. User-Agent is always set by the Fetcher unless
	// present here.
	Header http.Header
}

// FetchResult holds a raw HTTP response. It is owned by the extractor
// that requested it and must not be retained past parsing.
type FetchResult struct {
	StatusCode int
	Body       string
	FinalURL   string
}

// OK reports whether the status code is 2xx.
func (r *FetchResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Check returns EFETCH if the response status is not 2xx.
func (r *FetchResult) Check() error {
	if !r.OK() {
		return Errorf(EFETCH, "HTTP %d for %s", r.StatusCode, r.FinalURL)
	}
	return nil
}

// Fetcher issues HTTP GET requests.
type Fetcher interface {
	// Fetch performs the request and returns the body for any status code.
	// Transport failures return EFETCH. Callers that need a successful
	// status call FetchResult.Check.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error)
}
