package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/fwojciec/sift"
	sifthttp "github.com/fwojciec/sift/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body and status from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := sifthttp.NewFetcher()

		res, err := fetcher.Fetch(context.Background(), &sift.FetchRequest{URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "<html><body>Hello World</body></html>", res.Body)
		assert.NoError(t, res.Check())
	})

	t.Run("sends browser user agent by default", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.Header.Get("User-Agent")
		}))
		defer server.Close()

		_, err := sifthttp.NewFetcher().Fetch(context.Background(), &sift.FetchRequest{URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, sift.DefaultUserAgent, <-got)
	})

	t.Run("custom user agent option and header override", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 2)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.Header.Get("User-Agent")
		}))
		defer server.Close()

		fetcher := sifthttp.NewFetcher(sifthttp.WithUserAgent("Mozilla/5.0"))
		_, err := fetcher.Fetch(context.Background(), &sift.FetchRequest{URL: server.URL})
		require.NoError(t, err)
		_, err = fetcher.Fetch(context.Background(), &sift.FetchRequest{
			URL:    server.URL,
			Header: http.Header{"User-Agent": []string{"custom"}},
		})
		require.NoError(t, err)

		assert.Equal(t, "Mozilla/5.0", <-got)
		assert.Equal(t, "custom", <-got)
	})

	t.Run("merges query parameters", func(t *testing.T) {
		t.Parallel()

		queries := make(chan url.Values, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			queries <- r.URL.Query()
		}))
		defer server.Close()

		_, err := sifthttp.NewFetcher().Fetch(context.Background(), &sift.FetchRequest{
			URL:   server.URL + "/search?hl=ko",
			Query: url.Values{"q": []string{"아이유 콘서트"}, "tbm": []string{"isch"}},
		})
		require.NoError(t, err)
		got := <-queries
		assert.Equal(t, "ko", got.Get("hl"))
		assert.Equal(t, "아이유 콘서트", got.Get("q"))
		assert.Equal(t, "isch", got.Get("tbm"))
	})

	t.Run("returns body for non-2xx status and Check reports EFETCH", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		res, err := sifthttp.NewFetcher().Fetch(context.Background(), &sift.FetchRequest{URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, "404 Not Found", res.Body)

		err = res.Check()
		require.Error(t, err)
		assert.Equal(t, sift.EFETCH, sift.ErrorCode(err))
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("reports final URL after redirect", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/new", http.StatusFound)
		})
		mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("moved"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		res, err := sifthttp.NewFetcher().Fetch(context.Background(), &sift.FetchRequest{URL: server.URL + "/old"})
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/new", res.FinalURL)
	})

	t.Run("caps body size", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("0123456789"))
		}))
		defer server.Close()

		res, err := sifthttp.NewFetcher(sifthttp.WithMaxBodySize(4)).Fetch(context.Background(), &sift.FetchRequest{URL: server.URL})
		require.NoError(t, err)
		assert.Equal(t, "0123", res.Body)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := sifthttp.NewFetcher(sifthttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), &sift.FetchRequest{URL: server.URL})
		require.Error(t, err)
		assert.Equal(t, sift.EFETCH, sift.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := sifthttp.NewFetcher().Fetch(ctx, &sift.FetchRequest{URL: server.URL})
		require.Error(t, err)
	})

	t.Run("returns EFETCH for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := sifthttp.NewFetcher(sifthttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), &sift.FetchRequest{URL: "http://non-existent-host.invalid/page"})
		require.Error(t, err)
		assert.Equal(t, sift.EFETCH, sift.ErrorCode(err))
	})

	t.Run("returns EINVALID for empty URL", func(t *testing.T) {
		t.Parallel()

		_, err := sifthttp.NewFetcher().Fetch(context.Background(), &sift.FetchRequest{})
		require.Error(t, err)
		assert.Equal(t, sift.EINVALID, sift.ErrorCode(err))
	})
}

// Compile-time verification that Fetcher implements sift.Fetcher
var _ sift.Fetcher = (*sifthttp.Fetcher)(nil)
