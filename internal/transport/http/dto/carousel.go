package dto

import (
	"premium_motors/internal/domain/models"

	"github.com/google/uuid"
)

type CreateSlideRequest struct {
	Image  string  `json:"image" validate:"required"`
	Title  *string `json:"title"`
	Link   *string `json:"link"`
	Order  int     `json:"order" validate:"gte=0"`
	Active bool    `json:"active"`
}

func (r CreateSlideRequest) ToDomain() models.CarouselImage {
	return models.CarouselImage{
		Image:  r.Image,
		Title:  r.Title,
		Link:   r.Link,
		Order:  r.Order,
		Active: r.Active,
	}
}

type UpdateSlideRequest struct {
	CreateSlideRequest
}

func (r UpdateSlideRequest) ToDomain(id uuid.UUID) models.CarouselImage {
	slide := r.CreateSlideRequest.ToDomain()
	slide.ID = id
	return slide
}
