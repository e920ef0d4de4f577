package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaseHistory is an append-only record of a tenancy on a property,
// written in the same transaction as the lease change it describes.
type LeaseHistory struct {
	ID         uuid.UUID  `json:"id"`
	LeaseID    *uuid.UUID `json:"lease_id,omitempty"`
	PropertyID uuid.UUID  `json:"property_id"`
	TenantID   uuid.UUID  `json:"tenant_id"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    *time.Time `json:"end_date,omitempty"`
	Reason     *string    `json:"reason,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
