package dto

import (
	"premium_motors/internal/domain/models"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Title     string  `json:"title" validate:"required"`
	Slug      string  `json:"slug" validate:"required"`
	Excerpt   *string `json:"excerpt"`
	Content   string  `json:"content" validate:"required"`
	Image     *string `json:"image"`
	Published bool    `json:"published"`
}

func (r CreatePostRequest) ToDomain(authorID uuid.UUID) models.Post {
	return models.Post{
		Title:     r.Title,
		Slug:      r.Slug,
		Excerpt:   r.Excerpt,
		Content:   r.Content,
		Image:     r.Image,
		Published: r.Published,
		AuthorID:  authorID,
	}
}

type UpdatePostRequest struct {
	CreatePostRequest
}

type PostListResponse struct {
	Posts      []models.Post `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}
