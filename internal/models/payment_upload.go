package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentUpload is a tenant-submitted proof of payment. Verification by a
// landlord or superadmin is the only path by which a tenant-initiated
// payment reaches paid.
type PaymentUpload struct {
	ID           uuid.UUID  `json:"id"`
	TenantID     uuid.UUID  `json:"tenant_id"`
	PaymentID    *uuid.UUID `json:"payment_id,omitempty"`
	PaymentMonth string     `json:"payment_month"`
	UploadType   string     `json:"upload_type"`
	UploadURL    string     `json:"upload_url"`
	Reference    *string    `json:"reference_number,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	Verified     bool       `json:"verified"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	VerifiedBy   *uuid.UUID `json:"verified_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
