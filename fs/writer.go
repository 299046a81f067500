// Package fs exports crawled pages as files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/sift"
)

// URLToPath converts a page URL to a relative file path under its host.
// Example: https://example.com/blog/post → example.com/blog/post.txt
// Markdown pages get the .md extension instead. Paths that climb out of
// the host directory return EINVALID.
func URLToPath(rawURL string, format sift.Format) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", sift.WrapError(sift.EINVALID, err, "invalid page URL %q", rawURL)
	}
	if u.Hostname() == "" {
		return "", sift.Errorf(sift.EINVALID, "page URL %q has no host", rawURL)
	}

	ext := ".txt"
	if format == sift.FormatMarkdown {
		ext = ".md"
	}

	path := strings.TrimPrefix(u.Path, "/")
	for _, seg := range strings.Split(path, "/") {
		if seg == ".." {
			return "", sift.Errorf(sift.EINVALID, "path traversal in %q", rawURL)
		}
	}

	switch {
	case path == "":
		path = "index" + ext
	case strings.HasSuffix(path, "/"):
		path += "index" + ext
	default:
		path += ext
	}
	return filepath.Join(u.Hostname(), filepath.FromSlash(path)), nil
}

// FormatPage renders page with YAML frontmatter.
func FormatPage(page *sift.ArchivedPage) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(strconv.Quote(page.Title))
	b.WriteString("\nformat: ")
	b.WriteString(string(page.Format))
	if page.ContentHash != "" {
		b.WriteString("\nhash: ")
		b.WriteString(page.ContentHash)
	}
	b.WriteString("\ncrawled: ")
	b.WriteString(page.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(page.Text)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements sift.PageWriter at compile time.
var _ sift.PageWriter = (*Writer)(nil)

// Writer writes pages below a base directory. Each file is written to a
// temporary name and renamed into place, so readers never see a partial
// page.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePage writes page to the path given by URLToPath, replacing any
// earlier export of the same URL.
func (w *Writer) WritePage(ctx context.Context, page *sift.ArchivedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(page.URL, page.Format)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".sift-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(FormatPage(page)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fullPath)
}
