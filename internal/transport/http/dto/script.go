package dto

import (
	"premium_motors/internal/domain/models"

	"github.com/google/uuid"
)

type CreateScriptRequest struct {
	Name        string  `json:"name" validate:"required"`
	Content     string  `json:"content" validate:"required"`
	Position    string  `json:"position" validate:"required,oneof=HEAD BODY_START BODY_END"`
	IsActive    bool    `json:"is_active"`
	Description *string `json:"description"`
	Order       int     `json:"order" validate:"gte=0"`
}

func (r CreateScriptRequest) ToDomain() models.CustomScript {
	return models.CustomScript{
		Name:        r.Name,
		Content:     r.Content,
		Position:    models.ScriptPosition(r.Position),
		IsActive:    r.IsActive,
		Description: r.Description,
		Order:       r.Order,
	}
}

type UpdateScriptRequest struct {
	CreateScriptRequest
}

func (r UpdateScriptRequest) ToDomain(id uuid.UUID) models.CustomScript {
	script := r.CreateScriptRequest.ToDomain()
	script.ID = id
	return script
}
