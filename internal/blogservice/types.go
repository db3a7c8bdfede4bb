package blogservice

import (
	"database/sql"
	"time"
)

// Category is a closed enumeration of blog topics.
type Category string

const (
	CategoryTechnology Category = "technology"
	CategoryLifestyle  Category = "lifestyle"
	CategoryTravel     Category = "travel"
	CategoryFood       Category = "food"
	CategorySports     Category = "sports"
	CategoryEducation  Category = "education"
)

var Categories = []Category{
	CategoryTechnology,
	CategoryLifestyle,
	CategoryTravel,
	CategoryFood,
	CategorySports,
	CategoryEducation,
}

func (c Category) IsValid() bool {
	for _, valid := range Categories {
		if c == valid {
			return true
		}
	}
	return false
}

type Blog struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	MediaURL  string    `json:"media_url"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type Like struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	BlogID    int       `json:"blog_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	BlogID    int       `json:"blog_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type SavedBlog struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	BlogID    int       `json:"blog_id"`
	CreatedAt time.Time `json:"created_at"`
}

type BlogModel struct {
	db *sql.DB
}

type BlogService struct {
	m *BlogModel
}
