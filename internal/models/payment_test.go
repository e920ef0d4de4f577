package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveStatusDerivesOverdue(t *testing.T) {
	p := &Payment{Status: PaymentStatusPending, DueDate: now.AddDate(0, 0, -3)}
	assert.Equal(t, PaymentStatusOverdue, p.EffectiveStatus(now))

	p.Status = PaymentStatusPartial
	assert.Equal(t, PaymentStatusOverdue, p.EffectiveStatus(now))
}

func TestEffectiveStatusPaidNeverOverdue(t *testing.T) {
	paidAt := now.AddDate(0, 0, -1)
	p := &Payment{Status: PaymentStatusPaid, DueDate: now.AddDate(0, 0, -30), PaymentDate: &paidAt}
	assert.Equal(t, PaymentStatusPaid, p.EffectiveStatus(now))
}

func TestEffectiveStatusFutureDueDateUnchanged(t *testing.T) {
	p := &Payment{Status: PaymentStatusPending, DueDate: now.AddDate(0, 0, 10)}
	assert.Equal(t, PaymentStatusPending, p.EffectiveStatus(now))

	// Due today is not overdue yet.
	p.DueDate = now
	assert.Equal(t, PaymentStatusPending, p.EffectiveStatus(now))
}

func TestRemainder(t *testing.T) {
	assert.Equal(t, 250.0, Remainder(500, 250))
	assert.Equal(t, 0.0, Remainder(500, 500))
}
