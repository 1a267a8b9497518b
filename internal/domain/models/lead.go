package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lead is one recorded expression of interest in a specific car. Leads are
// append-only: repeated submissions from the same visitor create independent
// rows.
type Lead struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CarID     uuid.UUID `json:"car_id" db:"car_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Car is populated on admin listings only.
	Car *Car `json:"car,omitempty" db:"-"`
}

type LeadValidationError struct {
	Errors []string
}

func (e *LeadValidationError) Error() string {
	return "lead validation failed: " + strings.Join(e.Errors, "; ")
}
