package models

import (
	"time"

	"github.com/google/uuid"
)

type LeaseStatusType string

const (
	LeaseStatusActive  LeaseStatusType = "active"
	LeaseStatusExpired LeaseStatusType = "expired"
)

// EffectiveLeaseStatusType is derived from end_date at read time. The stored
// status is a write-time snapshot and is never trusted for display.
type EffectiveLeaseStatusType string

const (
	EffectiveLeaseActive           EffectiveLeaseStatusType = "active"
	EffectiveLeaseExpiringSoon     EffectiveLeaseStatusType = "expiring-soon"
	EffectiveLeaseExpiringThisWeek EffectiveLeaseStatusType = "expiring-this-week"
	EffectiveLeaseExpired          EffectiveLeaseStatusType = "expired"
)

type SeverityType string

const (
	SeverityLow    SeverityType = "low"
	SeverityMedium SeverityType = "medium"
	SeverityHigh   SeverityType = "high"
)

const (
	WarningExpired      = "Expired"
	WarningExpiresWeek  = "Expires this week"
	WarningExpiresSoon  = "Expires soon"
	expiryWeekDays      = 7
	expirySoonDays      = 30
	severityMediumLimit = 60
)

// Lease links one property, one tenant, one landlord. At most one active
// lease may exist per property at any time.
type Lease struct {
	Versioned

	ID          uuid.UUID       `json:"id"`
	PropertyID  uuid.UUID       `json:"property_id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	LandlordID  uuid.UUID       `json:"landlord_id"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	MonthlyRent float64         `json:"monthly_rent"`
	Deposit     float64         `json:"deposit"`
	Currency    CurrencyType    `json:"currency"`
	Status      LeaseStatusType `json:"status"`
	Terms       *string         `json:"terms,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (l *Lease) GetID() string { return l.ID.String() }

// LeaseStanding is the read-time view of a lease's lifecycle state.
type LeaseStanding struct {
	Status          EffectiveLeaseStatusType `json:"status"`
	DaysUntilExpiry int                      `json:"days_until_expiry"`
	Warning         string                   `json:"warning,omitempty"`
	Severity        SeverityType             `json:"severity"`
}

// Standing recomputes the effective status from end_date vs. now. A stored
// status of expired wins; otherwise the date math does, regardless of the
// stored flag.
func (l *Lease) Standing(now time.Time) LeaseStanding {
	days := daysBetween(now, l.EndDate)

	if l.Status == LeaseStatusExpired || days < 0 {
		return LeaseStanding{
			Status:          EffectiveLeaseExpired,
			DaysUntilExpiry: days,
			Warning:         WarningExpired,
			Severity:        SeverityHigh,
		}
	}

	st := LeaseStanding{Status: EffectiveLeaseActive, DaysUntilExpiry: days}
	switch {
	case days <= expiryWeekDays:
		st.Status = EffectiveLeaseExpiringThisWeek
		st.Warning = WarningExpiresWeek
	case days <= expirySoonDays:
		st.Status = EffectiveLeaseExpiringSoon
		st.Warning = WarningExpiresSoon
	}

	switch {
	case days <= expirySoonDays:
		st.Severity = SeverityHigh
	case days <= severityMediumLimit:
		st.Severity = SeverityMedium
	default:
		st.Severity = SeverityLow
	}
	return st
}

// daysBetween counts whole civil days from now's date to end's date,
// ignoring time-of-day. Negative when end is in the past.
func daysBetween(now, end time.Time) int {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
