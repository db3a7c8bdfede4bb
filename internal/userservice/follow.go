package userservice

import (
	"context"
	"errors"
)

// A follow is a directed edge: following_id follows followed_by_id. The
// table enforces uniqueness per ordered pair; nothing here guards against
// self-follows.

func (m *DBModel) insertFollow(ctx context.Context, followingID, followedByID int) error {
	query := `
		INSERT INTO follows (following_id, followed_by_id)
		VALUES ($1, $2)`

	_, err := m.db.ExecContext(ctx, query, followingID, followedByID)
	return err
}

func (m *DBModel) deleteFollow(ctx context.Context, followingID, followedByID int) error {
	query := `
		DELETE FROM follows
		WHERE following_id = $1 AND followed_by_id = $2`

	res, err := m.db.ExecContext(ctx, query, followingID, followedByID)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("follow relation does not exist")
	}

	return nil
}

// getFollowing returns the users that the given user follows.
func (m *DBModel) getFollowing(ctx context.Context, userID int) ([]User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.created_at
		FROM users u
		INNER JOIN follows f ON u.id = f.followed_by_id
		WHERE f.following_id = $1
		ORDER BY u.id`

	return m.queryUsers(ctx, query, userID)
}

// getFollowedBy returns the users that follow the given user.
func (m *DBModel) getFollowedBy(ctx context.Context, userID int) ([]User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.created_at
		FROM users u
		INNER JOIN follows f ON u.id = f.following_id
		WHERE f.followed_by_id = $1
		ORDER BY u.id`

	return m.queryUsers(ctx, query, userID)
}

func (m *DBModel) queryUsers(ctx context.Context, query string, args ...any) ([]User, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
