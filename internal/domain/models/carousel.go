package models

import (
	"time"

	"github.com/google/uuid"
)

// CarouselImage is one slide of the homepage carousel. The public site shows
// active slides ordered by Order ascending.
type CarouselImage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Image     string    `json:"image" db:"image"`
	Title     *string   `json:"title,omitempty" db:"title"`
	Link      *string   `json:"link,omitempty" db:"link"`
	Order     int       `json:"order" db:"position"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
