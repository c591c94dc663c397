package manufacturer

import (
	"time"

	"github.com/google/uuid"
)

// Manufacturer represents a production partner that fulfils orders.
type Manufacturer struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Capabilities []string  `json:"capabilities"`
	LeadTimeDays int       `json:"lead_time_days"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for adding a manufacturer.
type RegisterRequest struct {
	Name         string   `json:"name"`
	ContactEmail string   `json:"contact_email"`
	Capabilities []string `json:"capabilities"`
	LeadTimeDays int      `json:"lead_time_days"`
}

// UpdateRequest adjusts a manufacturer's standing. Nil fields are left as is.
type UpdateRequest struct {
	ContactEmail *string   `json:"contact_email,omitempty"`
	Capabilities *[]string `json:"capabilities,omitempty"`
	LeadTimeDays *int      `json:"lead_time_days,omitempty"`
	Active       *bool     `json:"active,omitempty"`
}
