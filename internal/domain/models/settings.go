package models

import "time"

// SiteSettings is the single-row site configuration. Absent optional text is
// stored as NULL, never as an empty string; the transport layer normalizes
// before it gets here.
type SiteSettings struct {
	WhatsappNumber string    `json:"whatsapp_number" db:"whatsapp_number"`
	CompanyName    string    `json:"company_name" db:"company_name"`
	CompanyEmail   *string   `json:"company_email,omitempty" db:"company_email"`
	CompanyAddress *string   `json:"company_address,omitempty" db:"company_address"`
	FacebookURL    *string   `json:"facebook_url,omitempty" db:"facebook_url"`
	InstagramURL   *string   `json:"instagram_url,omitempty" db:"instagram_url"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
