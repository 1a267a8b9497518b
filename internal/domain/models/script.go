package models

import (
	"time"

	"github.com/google/uuid"
)

type ScriptPosition string

const (
	ScriptPositionHead      ScriptPosition = "HEAD"
	ScriptPositionBodyStart ScriptPosition = "BODY_START"
	ScriptPositionBodyEnd   ScriptPosition = "BODY_END"
)

// CustomScript is an injected third-party tag (analytics, marketing pixels).
// The public site only ever sees active scripts.
type CustomScript struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Content     string         `json:"content" db:"content"`
	Position    ScriptPosition `json:"position" db:"script_position"`
	IsActive    bool           `json:"is_active" db:"is_active"`
	Description *string        `json:"description,omitempty" db:"description"`
	Order       int            `json:"order" db:"sort_order"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}
