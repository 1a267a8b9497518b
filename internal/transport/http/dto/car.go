package dto

import (
	"premium_motors/internal/domain/models"

	"github.com/google/uuid"
)

type CreateCarRequest struct {
	Brand          string   `json:"brand" validate:"required"`
	Model          string   `json:"model" validate:"required"`
	Year           string   `json:"year" validate:"required,min=4"`
	ModelYear      *string  `json:"model_year"`
	Version        *string  `json:"version"`
	Transmission   *string  `json:"transmission"`
	Doors          *int     `json:"doors" validate:"omitempty,gt=0"`
	Fuel           *string  `json:"fuel"`
	Mileage        *int     `json:"mileage" validate:"omitempty,gte=0"`
	Plate          *string  `json:"plate"`
	Color          *string  `json:"color"`
	Seats          *int     `json:"seats" validate:"omitempty,gt=0"`
	Price          float64  `json:"price" validate:"required,gt=0"`
	Status         string   `json:"status" validate:"omitempty,oneof=AVAILABLE SOLD"`
	Consigned      bool     `json:"consigned"`
	Description    string   `json:"description" validate:"required"`
	Optionals      *string  `json:"optionals"`
	AdditionalInfo *string  `json:"additional_info"`
	Images         []string `json:"images"`
}

// ToDomain builds the domain car, normalizing the plate and defaulting the
// status to AVAILABLE.
func (r CreateCarRequest) ToDomain() models.Car {
	car := models.Car{
		Brand:          r.Brand,
		Model:          r.Model,
		Year:           r.Year,
		ModelYear:      r.ModelYear,
		Version:        r.Version,
		Transmission:   r.Transmission,
		Doors:          r.Doors,
		Fuel:           r.Fuel,
		Mileage:        r.Mileage,
		Color:          r.Color,
		Seats:          r.Seats,
		Price:          r.Price,
		Status:         models.CarStatus(r.Status),
		Consigned:      r.Consigned,
		Description:    r.Description,
		Optionals:      r.Optionals,
		AdditionalInfo: r.AdditionalInfo,
		Images:         r.Images,
	}

	if car.Status == "" {
		car.Status = models.CarStatusAvailable
	}

	if r.Plate != nil {
		normalized := models.NormalizePlate(*r.Plate)
		if normalized != "" {
			car.Plate = &normalized
		}
	}

	return car
}

// UpdateCarRequest carries the full replacement state of a car; partial
// updates are not supported, the admin form always submits every field.
type UpdateCarRequest struct {
	CreateCarRequest
}

func (r UpdateCarRequest) ToDomain(id uuid.UUID) models.Car {
	car := r.CreateCarRequest.ToDomain()
	car.ID = id
	return car
}

type UpdateCarStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE SOLD"`
}

type UpdateCarImagesRequest struct {
	Images []string `json:"images" validate:"required,min=1"`
}
