package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func leaseEnding(end time.Time, status LeaseStatusType) *Lease {
	return &Lease{EndDate: end, Status: status}
}

func TestStandingExpiredByDateDespiteStoredActive(t *testing.T) {
	l := leaseEnding(now.AddDate(0, 0, -1), LeaseStatusActive)
	st := l.Standing(now)

	assert.Equal(t, EffectiveLeaseExpired, st.Status)
	assert.Equal(t, -1, st.DaysUntilExpiry)
	assert.Equal(t, WarningExpired, st.Warning)
	assert.Equal(t, SeverityHigh, st.Severity)
}

func TestStandingStoredExpiredWinsOverFutureDate(t *testing.T) {
	l := leaseEnding(now.AddDate(0, 0, 90), LeaseStatusExpired)
	st := l.Standing(now)

	assert.Equal(t, EffectiveLeaseExpired, st.Status)
	assert.Equal(t, SeverityHigh, st.Severity)
}

func TestStandingExpiresThisWeek(t *testing.T) {
	l := leaseEnding(now.AddDate(0, 0, 5), LeaseStatusActive)
	st := l.Standing(now)

	assert.Equal(t, EffectiveLeaseExpiringThisWeek, st.Status)
	assert.Equal(t, 5, st.DaysUntilExpiry)
	assert.Equal(t, WarningExpiresWeek, st.Warning)
	assert.Equal(t, SeverityHigh, st.Severity)
}

func TestStandingExpiresSoon(t *testing.T) {
	l := leaseEnding(now.AddDate(0, 0, 20), LeaseStatusActive)
	st := l.Standing(now)

	assert.Equal(t, EffectiveLeaseExpiringSoon, st.Status)
	assert.Equal(t, WarningExpiresSoon, st.Warning)
	assert.Equal(t, SeverityHigh, st.Severity)
}

func TestStandingMediumSeverityBand(t *testing.T) {
	l := leaseEnding(now.AddDate(0, 0, 45), LeaseStatusActive)
	st := l.Standing(now)

	assert.Equal(t, EffectiveLeaseActive, st.Status)
	assert.Empty(t, st.Warning)
	assert.Equal(t, SeverityMedium, st.Severity)
}

func TestStandingFarFutureIsLowSeverity(t *testing.T) {
	l := leaseEnding(now.AddDate(0, 0, 200), LeaseStatusActive)
	st := l.Standing(now)

	assert.Equal(t, EffectiveLeaseActive, st.Status)
	assert.Equal(t, 200, st.DaysUntilExpiry)
	assert.Equal(t, SeverityLow, st.Severity)
}

func TestStandingIgnoresTimeOfDay(t *testing.T) {
	// Lease ends today at 00:00; checked at 23:59 it is still day zero,
	// not expired.
	endOfDay := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	l := leaseEnding(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), LeaseStatusActive)
	st := l.Standing(endOfDay)

	assert.Equal(t, 0, st.DaysUntilExpiry)
	assert.Equal(t, EffectiveLeaseExpiringThisWeek, st.Status)
}
