package dtos

import "time"

type RecordPaymentRequest struct {
	LeaseID         string    `json:"lease_id" validate:"required,uuid4"`
	Amount          float64   `json:"amount" validate:"required,gt=0"`
	Currency        string    `json:"currency" validate:"required,oneof=USD UGX"`
	DueDate         time.Time `json:"due_date" validate:"required"`
	PaymentMethodID *string   `json:"payment_method_id,omitempty" validate:"omitempty,uuid4"`
	Notes           *string   `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type ConfirmPaymentRequest struct {
	AmountReceived  float64 `json:"amount_received" validate:"required,gt=0"`
	PaymentMethodID *string `json:"payment_method_id,omitempty" validate:"omitempty,uuid4"`
	Reference       *string `json:"reference,omitempty" validate:"omitempty,max=200"`
}

type SubmitPaymentProofRequest struct {
	PaymentID    *string `json:"payment_id,omitempty" validate:"omitempty,uuid4"`
	PaymentMonth string  `json:"payment_month" validate:"required,len=7"`
	UploadType   string  `json:"upload_type" validate:"required,oneof=receipt bank_slip screenshot"`
	UploadURL    string  `json:"upload_url" validate:"required,url"`
	Reference    *string `json:"reference_number,omitempty" validate:"omitempty,max=200"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type SavePaymentMethodRequest struct {
	ID       *string        `json:"id,omitempty" validate:"omitempty,uuid4"`
	Name     string         `json:"name" validate:"required,min=1,max=100"`
	Type     string         `json:"type" validate:"required,oneof=bank mobile_money cash"`
	Details  map[string]any `json:"details,omitempty"`
	IsActive bool           `json:"is_active"`
}
