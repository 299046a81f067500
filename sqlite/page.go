package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/sift"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sift.PageService = (*PageService)(nil)

// PageService implements sift.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

const pageColumns = "id, url, title, text, format, content_hash, fetched_at"

// CreatePage stores page and sets its ID, ContentHash and FetchedAt.
func (s *PageService) CreatePage(ctx context.Context, page *sift.ArchivedPage) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.FetchedAt = time.Now().UTC()
	page.ContentHash = hashContent(page.Text)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (`+pageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.URL, page.Title, page.Text, string(page.Format), page.ContentHash,
		formatTime(page.FetchedAt))

	return err
}

// FindPageByID retrieves a page by ID.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*sift.ArchivedPage, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE id = ?", id)

	page, err := scanPage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sift.Errorf(sift.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// FindPages retrieves pages matching the filter, most recently fetched first.
func (s *PageService) FindPages(ctx context.Context, filter sift.PageFilter) ([]*sift.ArchivedPage, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + pageColumns + " FROM pages WHERE 1=1")
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []*sift.ArchivedPage{}
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPage(row scanner) (*sift.ArchivedPage, error) {
	var page sift.ArchivedPage
	var format, fetchedAt string

	if err := row.Scan(&page.ID, &page.URL, &page.Title, &page.Text, &format,
		&page.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	page.Format = sift.Format(format)

	var err error
	page.FetchedAt, err = parseTime(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	return &page, nil
}
