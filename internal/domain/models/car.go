package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CarStatus string

const (
	CarStatusAvailable CarStatus = "AVAILABLE"
	CarStatusSold      CarStatus = "SOLD"
)

// Car is one vehicle in inventory. Images is the canonical ordered list of
// image URLs; Images[0] is the cover. The car_images table mirrors this list
// with explicit positions and is regenerated on every write that touches
// images, never edited on its own.
type Car struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Brand          string    `json:"brand" db:"brand"`
	Model          string    `json:"model" db:"model"`
	Year           string    `json:"year" db:"year"`
	ModelYear      *string   `json:"model_year,omitempty" db:"model_year"`
	Version        *string   `json:"version,omitempty" db:"version"`
	Transmission   *string   `json:"transmission,omitempty" db:"transmission"`
	Doors          *int      `json:"doors,omitempty" db:"doors"`
	Fuel           *string   `json:"fuel,omitempty" db:"fuel"`
	Mileage        *int      `json:"mileage,omitempty" db:"mileage"`
	Plate          *string   `json:"plate,omitempty" db:"plate"`
	Color          *string   `json:"color,omitempty" db:"color"`
	Seats          *int      `json:"seats,omitempty" db:"seats"`
	Price          float64   `json:"price" db:"price"`
	Status         CarStatus `json:"status" db:"status"`
	Consigned      bool      `json:"consigned" db:"consigned"`
	Description    string    `json:"description" db:"description"`
	Optionals      *string   `json:"optionals,omitempty" db:"optionals"`
	AdditionalInfo *string   `json:"additional_info,omitempty" db:"additional_info"`
	Images         []string  `json:"images" db:"images"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// CarImage is one row of the mirrored per-image order table.
type CarImage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	CarID     uuid.UUID `json:"car_id" db:"car_id"`
	URL       string    `json:"url" db:"url"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CoverImage returns the cover image URL, or "" when the car has no images.
func (c *Car) CoverImage() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[0]
}

// NormalizePlate strips everything but letters and digits and uppercases the
// rest. Applied identically on create and update so the stored plate is
// always comparable.
func NormalizePlate(plate string) string {
	var b strings.Builder
	for _, r := range plate {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate checks the required-field set shared by create and update.
func (c *Car) Validate() error {
	var validationErrors []string

	if strings.TrimSpace(c.Brand) == "" {
		validationErrors = append(validationErrors, "brand is required")
	}
	if strings.TrimSpace(c.Model) == "" {
		validationErrors = append(validationErrors, "model is required")
	}
	if len(c.Year) < 4 {
		validationErrors = append(validationErrors, "year must have at least 4 characters")
	}
	if c.Price <= 0 {
		validationErrors = append(validationErrors, "price must be positive")
	}
	if strings.TrimSpace(c.Description) == "" {
		validationErrors = append(validationErrors, "description is required")
	}
	if c.Mileage != nil && *c.Mileage < 0 {
		validationErrors = append(validationErrors, "mileage must not be negative")
	}

	switch c.Status {
	case CarStatusAvailable, CarStatusSold, "":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("invalid status '%s', must be one of: AVAILABLE, SOLD", c.Status))
	}

	if len(validationErrors) > 0 {
		return &CarValidationError{Errors: validationErrors}
	}

	return nil
}

type CarValidationError struct {
	Errors []string
}

func (e *CarValidationError) Error() string {
	return fmt.Sprintf("car validation failed: %s", strings.Join(e.Errors, "; "))
}

func IsCarValidationError(err error) bool {
	_, ok := err.(*CarValidationError)
	return ok
}
