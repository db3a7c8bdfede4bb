package blogservice

import (
	"context"
	"fmt"
)

// Likes, comments, and saved blogs are plain associative rows. Foreign keys
// are enforced by the store only; there is no existence pre-check and no
// uniqueness on (user_id, blog_id) for likes.

func (m *BlogModel) insertLike(ctx context.Context, like *Like) error {
	query := `
		INSERT INTO likes (user_id, blog_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return m.db.QueryRowContext(ctx, query, like.UserID, like.BlogID).Scan(&like.ID, &like.CreatedAt)
}

func (m *BlogModel) insertComment(ctx context.Context, comment *Comment) error {
	query := `
		INSERT INTO comments (user_id, blog_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return m.db.QueryRowContext(ctx, query, comment.UserID, comment.BlogID, comment.Body).Scan(&comment.ID, &comment.CreatedAt)
}

func (m *BlogModel) insertSavedBlog(ctx context.Context, saved *SavedBlog) error {
	query := `
		INSERT INTO saved_blogs (user_id, blog_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return m.db.QueryRowContext(ctx, query, saved.UserID, saved.BlogID).Scan(&saved.ID, &saved.CreatedAt)
}

func (m *BlogModel) deleteLike(ctx context.Context, id int) error {
	return m.deleteByID(ctx, "likes", id)
}

func (m *BlogModel) deleteComment(ctx context.Context, id int) error {
	return m.deleteByID(ctx, "comments", id)
}

func (m *BlogModel) deleteSavedBlog(ctx context.Context, id int) error {
	return m.deleteByID(ctx, "saved_blogs", id)
}

func (m *BlogModel) deleteByID(ctx context.Context, table string, id int) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("no row in %s with id %d", table, id)
	}

	return nil
}
