package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUserForeignKey = errors.New("user_id does not exist")
)

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// ForeignKeyError is a helper function to check if the error is a foreign key constraint error.
func ForeignKeyError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23503" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *BlogModel) insert(ctx context.Context, blog *Blog) error {
	query := `
		INSERT INTO blogs (user_id, title, body, media_url, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	args := []any{blog.UserID, blog.Title, blog.Body, blog.MediaURL, string(blog.Category)}

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&blog.ID, &blog.CreatedAt)
	if err != nil {
		switch {
		case ForeignKeyError(err, "blogs_user_id_fkey"):
			return ErrUserForeignKey
		default:
			return err
		}
	}

	return nil
}

func (m *BlogModel) getBlogs(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT id, user_id, title, body, media_url, category, created_at
		FROM blogs
		ORDER BY created_at DESC`

	return m.queryBlogs(ctx, query)
}

// getBlogsPage returns one page of blogs ordered newest first. There is no
// upper bound on limit.
func (m *BlogModel) getBlogsPage(ctx context.Context, limit, offset int) ([]Blog, error) {
	query := `
		SELECT id, user_id, title, body, media_url, category, created_at
		FROM blogs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	return m.queryBlogs(ctx, query, limit, offset)
}

// getBlogsByTitle performs a case-insensitive substring match against the title.
func (m *BlogModel) getBlogsByTitle(ctx context.Context, search string, limit, offset int) ([]Blog, error) {
	query := `
		SELECT id, user_id, title, body, media_url, category, created_at
		FROM blogs
		WHERE title ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	return m.queryBlogs(ctx, query, likePattern(search), limit, offset)
}

// getBlogsByBody performs a case-insensitive substring match against the body.
func (m *BlogModel) getBlogsByBody(ctx context.Context, search string, limit, offset int) ([]Blog, error) {
	query := `
		SELECT id, user_id, title, body, media_url, category, created_at
		FROM blogs
		WHERE body ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	return m.queryBlogs(ctx, query, likePattern(search), limit, offset)
}

func (m *BlogModel) getBlogsByCategory(ctx context.Context, category string, limit, offset int) ([]Blog, error) {
	query := `
		SELECT id, user_id, title, body, media_url, category, created_at
		FROM blogs
		WHERE category = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	return m.queryBlogs(ctx, query, category, limit, offset)
}

func likePattern(search string) string {
	return fmt.Sprintf("%%%s%%", search)
}

func (m *BlogModel) queryBlogs(ctx context.Context, query string, args ...any) ([]Blog, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []Blog
	for rows.Next() {
		var blog Blog
		err := rows.Scan(&blog.ID, &blog.UserID, &blog.Title, &blog.Body, &blog.MediaURL, &blog.Category, &blog.CreatedAt)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}
