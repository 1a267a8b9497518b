package dto

import (
	"github.com/google/uuid"
)

// CreateLeadRequest carries the public enquiry form. The form rules live in
// the lead service so failures come back as a per-field list.
type CreateLeadRequest struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
	CarID uuid.UUID `json:"carId"`
}
