package models

import (
	"time"

	"github.com/google/uuid"
)

type RenewalStatusType string

const (
	RenewalStatusPending  RenewalStatusType = "pending"
	RenewalStatusApproved RenewalStatusType = "approved"
	RenewalStatusRejected RenewalStatusType = "rejected"
)

// LeaseRenewalRequest is a tenant-initiated ask to extend a lease; the
// landlord responds, and approval extends the lease end date.
type LeaseRenewalRequest struct {
	ID               uuid.UUID         `json:"id"`
	LeaseID          uuid.UUID         `json:"lease_id"`
	TenantID         uuid.UUID         `json:"tenant_id"`
	LandlordID       uuid.UUID         `json:"landlord_id"`
	RequestedEndDate time.Time         `json:"requested_end_date"`
	RequestedRent    *float64          `json:"requested_rent,omitempty"`
	RequestMessage   *string           `json:"request_message,omitempty"`
	Status           RenewalStatusType `json:"status"`
	ResponseMessage  *string           `json:"response_message,omitempty"`
	RespondedAt      *time.Time        `json:"responded_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
