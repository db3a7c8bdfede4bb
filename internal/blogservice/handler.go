package blogservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/mediumclone/internal/common"
)

func NewBlogService(db *sql.DB) *BlogService {
	return &BlogService{m: newBlogModel(db)}
}

type CreateBlogRequest struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	MediaURL string   `json:"media_url"`
	Category Category `json:"category"`
	UserID   int      `json:"user_id"`
}

// CreateBlog validates the text payload and persists the blog. The media URL
// must already be resolved by the caller.
func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*Blog, error) {
	v := common.NewValidator()
	validateTitle(v, req.Title)
	validateBody(v, req.Body)
	validateCategory(v, req.Category)
	validateInt(v, req.UserID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := Blog{
		UserID:   req.UserID,
		Title:    req.Title,
		Body:     req.Body,
		MediaURL: req.MediaURL,
		Category: req.Category,
	}

	err := s.m.insert(ctx, &blog)
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

// GetBlogs returns every blog post.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	return s.m.getBlogs(ctx)
}

// GetBlogsPage returns one page computed as offset = (page-1) * limit.
func (s *BlogService) GetBlogsPage(ctx context.Context, page, limit int) ([]Blog, error) {
	return s.m.getBlogsPage(ctx, limit, pageOffset(page, limit))
}

// SearchBlogsByName runs two independent case-insensitive substring queries,
// one against the title and one against the body. The two result sets are
// returned separately and are not deduplicated.
func (s *BlogService) SearchBlogsByName(ctx context.Context, search string, page, limit int) ([]Blog, []Blog, error) {
	offset := pageOffset(page, limit)

	byTitle, err := s.m.getBlogsByTitle(ctx, search, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	byBody, err := s.m.getBlogsByBody(ctx, search, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	return byTitle, byBody, nil
}

// GetBlogsByCategory filters by exact category match. An empty result set is
// reported as ErrRecordNotFound; unknown categories simply match nothing.
func (s *BlogService) GetBlogsByCategory(ctx context.Context, category string, page, limit int) ([]Blog, error) {
	blogs, err := s.m.getBlogsByCategory(ctx, category, limit, pageOffset(page, limit))
	if err != nil {
		return nil, err
	}

	if len(blogs) == 0 {
		return nil, ErrRecordNotFound
	}

	return blogs, nil
}

func (s *BlogService) LikeBlog(ctx context.Context, userID, blogID int) (*Like, error) {
	like := Like{UserID: userID, BlogID: blogID}

	err := s.m.insertLike(ctx, &like)
	if err != nil {
		return nil, err
	}

	return &like, nil
}

func (s *BlogService) CommentBlog(ctx context.Context, userID, blogID int, body string) (*Comment, error) {
	v := common.NewValidator()
	validateCommentBody(v, body)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	comment := Comment{UserID: userID, BlogID: blogID, Body: body}

	err := s.m.insertComment(ctx, &comment)
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

func (s *BlogService) SaveBlog(ctx context.Context, userID, blogID int) (*SavedBlog, error) {
	saved := SavedBlog{UserID: userID, BlogID: blogID}

	err := s.m.insertSavedBlog(ctx, &saved)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

func (s *BlogService) DeleteLike(ctx context.Context, likeID int) error {
	return s.m.deleteLike(ctx, likeID)
}

func (s *BlogService) DeleteComment(ctx context.Context, commentID int) error {
	return s.m.deleteComment(ctx, commentID)
}

func (s *BlogService) DeleteSavedBlog(ctx context.Context, savedBlogID int) error {
	return s.m.deleteSavedBlog(ctx, savedBlogID)
}

func pageOffset(page, limit int) int {
	return (page - 1) * limit
}
