package dtos

import "time"

type CreateLeaseRequest struct {
	PropertyID  string    `json:"property_id" validate:"required,uuid4"`
	TenantID    string    `json:"tenant_id" validate:"required,uuid4"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	MonthlyRent float64   `json:"monthly_rent" validate:"required,gt=0"`
	Deposit     float64   `json:"deposit" validate:"gte=0"`
	Currency    string    `json:"currency" validate:"required,oneof=USD UGX"`
	Terms       *string   `json:"terms,omitempty" validate:"omitempty,max=5000"`
}

type TerminateLeaseRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}

type RenewalRequestRequest struct {
	LeaseID          string    `json:"lease_id" validate:"required,uuid4"`
	RequestedEndDate time.Time `json:"requested_end_date" validate:"required"`
	RequestedRent    *float64  `json:"requested_rent,omitempty" validate:"omitempty,gt=0"`
	RequestMessage   *string   `json:"request_message,omitempty" validate:"omitempty,max=2000"`
}

type RenewalResponseRequest struct {
	Approve         bool    `json:"approve"`
	ResponseMessage *string `json:"response_message,omitempty" validate:"omitempty,max=2000"`
}
