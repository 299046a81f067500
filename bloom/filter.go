// Package bloom deduplicates result URLs with a Bloom filter.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Default sizing for a single search. A few pages of results stay far
// below DefaultCapacity.
const (
	DefaultCapacity = 1000
	DefaultFPRate   = 0.001
)

// Filter remembers URLs that have been seen. A URL is identified by its
// canonical form: scheme and host lowercased, fragment dropped.
// Filter is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n URLs at the given false
// positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Seen reports whether rawURL was seen before and records it.
// A false positive makes a new URL look seen; a seen URL is never
// reported as new.
func (f *Filter) Seen(rawURL string) bool {
	return f.f.TestAndAddString(Canonical(rawURL))
}

// Count returns the approximate number of distinct URLs recorded.
func (f *Filter) Count() uint {
	return uint(f.f.ApproximatedSize())
}

// Canonical returns the form of rawURL used for deduplication.
// Unparseable input is returned unchanged.
func Canonical(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}
