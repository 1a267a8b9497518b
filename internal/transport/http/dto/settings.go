package dto

import (
	"strings"

	"premium_motors/internal/domain/models"
)

type UpdateSettingsRequest struct {
	WhatsappNumber string `json:"whatsapp_number" validate:"required"`
	CompanyName    string `json:"company_name" validate:"required"`
	CompanyEmail   string `json:"company_email" validate:"omitempty,email"`
	CompanyAddress string `json:"company_address"`
	FacebookURL    string `json:"facebook_url"`
	InstagramURL   string `json:"instagram_url"`
}

// ToDomain normalizes absent optional text to NULL rather than storing empty
// strings.
func (r UpdateSettingsRequest) ToDomain() models.SiteSettings {
	return models.SiteSettings{
		WhatsappNumber: r.WhatsappNumber,
		CompanyName:    r.CompanyName,
		CompanyEmail:   optional(r.CompanyEmail),
		CompanyAddress: optional(r.CompanyAddress),
		FacebookURL:    optional(r.FacebookURL),
		InstagramURL:   optional(r.InstagramURL),
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
