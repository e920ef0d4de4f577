package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is an admin-managed way tenants can pay (bank, mobile
// money, cash office). Details holds method-specific fields as JSON.
type PaymentMethod struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Details   map[string]any  `json:"details,omitempty"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
