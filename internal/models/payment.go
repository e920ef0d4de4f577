package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatusType string

const (
	PaymentStatusPending PaymentStatusType = "pending"
	PaymentStatusPartial PaymentStatusType = "partial"
	PaymentStatusPaid    PaymentStatusType = "paid"

	// Overdue is derived at read time from due_date, never stored.
	PaymentStatusOverdue PaymentStatusType = "overdue"
)

// Payment is one rent payment record for a lease. A partial payment's
// recorded amount is the amount actually received; the remainder is carried
// by a follow-up pending row, not lost.
type Payment struct {
	Versioned

	ID              uuid.UUID         `json:"id"`
	LeaseID         uuid.UUID         `json:"lease_id"`
	TenantID        uuid.UUID         `json:"tenant_id"`
	LandlordID      uuid.UUID         `json:"landlord_id"`
	Amount          float64           `json:"amount"`
	Currency        CurrencyType      `json:"currency"`
	DueDate         time.Time         `json:"due_date"`
	PaymentDate     *time.Time        `json:"payment_date,omitempty"`
	Status          PaymentStatusType `json:"status"`
	PaymentMethodID *uuid.UUID        `json:"payment_method_id,omitempty"`
	Reference       *string           `json:"payment_reference,omitempty"`
	Notes           *string           `json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (p *Payment) GetID() string { return p.ID.String() }

// EffectiveStatus derives overdue from the due date at read time: a payment
// not yet paid whose due date has passed is overdue, whatever is stored.
func (p *Payment) EffectiveStatus(now time.Time) PaymentStatusType {
	if p.Status != PaymentStatusPaid && daysBetween(now, p.DueDate) < 0 {
		return PaymentStatusOverdue
	}
	return p.Status
}

// Remainder is the amount still owed after a (possibly partial) payment.
func Remainder(totalDue, paid float64) float64 {
	return totalDue - paid
}
