package blogservice

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/mediumclone/internal/common"
)

// setupTestUser is a helper function to create a test user in the database.
func setupTestUser(db *sql.DB) (*int, error) {
	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	err := db.QueryRow(query, "testuser", "testuser@example.com", []byte("not-a-real-hash")).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func setupTestEnvironment(t *testing.T) (*BlogService, *sql.DB, func() error, *int, error) {
	db := common.TestDB("file://../../migrations", t)

	id, err := setupTestUser(db)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM blogs")
		return err
	}

	return NewBlogService(db), db, cleanup, id, nil
}

func testBlogRequest(userID int) *CreateBlogRequest {
	return &CreateBlogRequest{
		Title:    "Test Blog",
		Body:     "This is a test blog body.",
		MediaURL: "https://media.example.com/test.jpg",
		Category: CategoryTechnology,
		UserID:   userID,
	}
}

func createRandomBlog(db *sql.DB, userID int, category Category, title, body string) (*int, error) {
	query := `
		INSERT INTO blogs (user_id, title, body, media_url, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int
	err := db.QueryRow(query, userID, title, body, "https://media.example.com/test.jpg", string(category)).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func TestCreateBlog(t *testing.T) {
	s, db, cleanup, userID, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	testCases := []struct {
		name        string
		mutate      func(req *CreateBlogRequest)
		expectedErr error
	}{
		{
			name:        "valid blog",
			mutate:      func(req *CreateBlogRequest) {},
			expectedErr: nil,
		},
		{
			name:        "short title",
			mutate:      func(req *CreateBlogRequest) { req.Title = "abc" },
			expectedErr: common.ValidationError{Errors: map[string]string{"title": "must be between 5 and 500 characters long"}},
		},
		{
			name:        "short body",
			mutate:      func(req *CreateBlogRequest) { req.Body = "short" },
			expectedErr: common.ValidationError{Errors: map[string]string{"body": "must be at least 10 characters long"}},
		},
		{
			name:        "unknown category",
			mutate:      func(req *CreateBlogRequest) { req.Category = "gardening" },
			expectedErr: common.ValidationError{Errors: map[string]string{"category": "must be a known category"}},
		},
		{
			name:        "missing author",
			mutate:      func(req *CreateBlogRequest) { req.UserID = 0 },
			expectedErr: common.ValidationError{Errors: map[string]string{"user_id": "must be greater than zero"}},
		},
		{
			name:        "nonexistent author",
			mutate:      func(req *CreateBlogRequest) { req.UserID = 99999 },
			expectedErr: ErrUserForeignKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			req := testBlogRequest(*userID)
			tc.mutate(req)

			blog, err := s.CreateBlog(ctx, req)
			assert.Equal(t, tc.expectedErr, err)

			if err == nil {
				assert.NotZero(t, blog.ID)

				var count int
				err := db.QueryRow("SELECT COUNT(*) FROM blogs").Scan(&count)
				assert.NoError(t, err)
				assert.Equal(t, 1, count)
			}

			t.Cleanup(func() {
				err := cleanup()
				assert.NoError(t, err)
			})
		})
	}
}

func TestGetBlogsPage(t *testing.T) {
	s, db, cleanup, userID, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	for i := 0; i < 7; i++ {
		_, err := createRandomBlog(db, *userID, CategoryTechnology, fmt.Sprintf("Test Blog %d", i), "This is a test blog body.")
		assert.NoError(t, err)
	}

	ctx := context.Background()

	// first page holds at most limit rows
	blogs, err := s.GetBlogsPage(ctx, 1, 5)
	assert.NoError(t, err)
	assert.Len(t, blogs, 5)

	// second page holds the remainder
	blogs, err = s.GetBlogsPage(ctx, 2, 5)
	assert.NoError(t, err)
	assert.Len(t, blogs, 2)

	// past the end is empty, not an error
	blogs, err = s.GetBlogsPage(ctx, 3, 5)
	assert.NoError(t, err)
	assert.Empty(t, blogs)

	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err)
	})
}

func TestSearchBlogsByName(t *testing.T) {
	s, db, cleanup, userID, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	_, err = createRandomBlog(db, *userID, CategoryTravel, "Hiking the Alps", "A walking holiday far from home.")
	assert.NoError(t, err)
	_, err = createRandomBlog(db, *userID, CategoryFood, "Weeknight dinners", "The best meals after hiking all day.")
	assert.NoError(t, err)

	ctx := context.Background()

	// matched case-insensitively and returned as two separate sets
	byTitle, byBody, err := s.SearchBlogsByName(ctx, "HIKING", 1, 5)
	assert.NoError(t, err)
	assert.Len(t, byTitle, 1)
	assert.Equal(t, "Hiking the Alps", byTitle[0].Title)
	assert.Len(t, byBody, 1)
	assert.Equal(t, "Weeknight dinners", byBody[0].Title)

	// no matches anywhere is not an error at this layer
	byTitle, byBody, err = s.SearchBlogsByName(ctx, "sailing", 1, 5)
	assert.NoError(t, err)
	assert.Empty(t, byTitle)
	assert.Empty(t, byBody)

	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err)
	})
}

func TestGetBlogsByCategory(t *testing.T) {
	s, db, cleanup, userID, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	_, err = createRandomBlog(db, *userID, CategoryTravel, "Hiking the Alps", "A walking holiday far from home.")
	assert.NoError(t, err)

	ctx := context.Background()

	blogs, err := s.GetBlogsByCategory(ctx, "travel", 1, 5)
	assert.NoError(t, err)
	assert.Len(t, blogs, 1)

	blogs, err = s.GetBlogsByCategory(ctx, "sports", 1, 5)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Nil(t, blogs)

	// unknown categories match nothing rather than failing
	blogs, err = s.GetBlogsByCategory(ctx, "gardening", 1, 5)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Nil(t, blogs)

	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err)
	})
}

func TestLikeBlog(t *testing.T) {
	s, db, cleanup, userID, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	blogID, err := createRandomBlog(db, *userID, CategoryTechnology, "Test Blog", "This is a test blog body.")
	assert.NoError(t, err)

	ctx := context.Background()

	like, err := s.LikeBlog(ctx, *userID, *blogID)
	assert.NoError(t, err)
	assert.NotZero(t, like.ID)

	// duplicate likes are not prevented
	again, err := s.LikeBlog(ctx, *userID, *blogID)
	assert.NoError(t, err)
	assert.NotEqual(t, like.ID, again.ID)

	// first delete succeeds, second surfaces an error
	err = s.DeleteLike(ctx, like.ID)
	assert.NoError(t, err)

	err = s.DeleteLike(ctx, like.ID)
	assert.Error(t, err)

	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err)
	})
}

func TestCommentBlog(t *testing.T) {
	s, db, cleanup, userID, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	blogID, err := createRandomBlog(db, *userID, CategoryTechnology, "Test Blog", "This is a test blog body.")
	assert.NoError(t, err)

	ctx := context.Background()

	comment, err := s.CommentBlog(ctx, *userID, *blogID, "great writeup")
	assert.NoError(t, err)
	assert.NotZero(t, comment.ID)

	_, err = s.CommentBlog(ctx, *userID, *blogID, "meh")
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"body": "must be at least 5 characters long"}}, err)

	err = s.DeleteComment(ctx, comment.ID)
	assert.NoError(t, err)

	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err)
	})
}

func TestSaveBlog(t *testing.T) {
	s, db, cleanup, userID, err := setupTestEnvironment(t)
	assert.NoError(t, err)

	blogID, err := createRandomBlog(db, *userID, CategoryTechnology, "Test Blog", "This is a test blog body.")
	assert.NoError(t, err)

	ctx := context.Background()

	saved, err := s.SaveBlog(ctx, *userID, *blogID)
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)

	err = s.DeleteSavedBlog(ctx, saved.ID)
	assert.NoError(t, err)

	err = s.DeleteSavedBlog(ctx, saved.ID)
	assert.Error(t, err)

	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err)
	})
}
