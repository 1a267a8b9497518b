package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry. Slug is unique across all posts.
type Post struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	Slug       string    `json:"slug" db:"slug"`
	Excerpt    *string   `json:"excerpt,omitempty" db:"excerpt"`
	Content    string    `json:"content" db:"content"`
	Image      *string   `json:"image,omitempty" db:"image"`
	Published  bool      `json:"published" db:"published"`
	AuthorID   uuid.UUID `json:"author_id" db:"author_id"`
	AuthorName string    `json:"author_name,omitempty" db:"-"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
