package inventory

import (
	"time"

	"bakery/internal/pkg/errs"
)

const (
	DefaultLowStockThreshold = 20
	DefaultExpiryWindowDays  = 15
)

// IsLowStock reports whether quantity is strictly below threshold.
func IsLowStock(quantity, threshold int) bool {
	return quantity < threshold
}

// DaysUntil counts calendar days from now to expiration. An expiration earlier
// today counts as 0 and yesterday as -1. Each time is read in its own location,
// so a DATE column (UTC midnight) compares by its printed day.
func DaysUntil(expiration, now time.Time) int {
	from := midnight(now)
	to := midnight(expiration)
	return int(to.Sub(from).Hours() / 24)
}

// IsExpiring reports whether expiration falls within [0, thresholdDays] days from now.
// Items already past their date are not "expiring".
func IsExpiring(expiration, now time.Time, thresholdDays int) bool {
	days := DaysUntil(expiration, now)
	return days >= 0 && days <= thresholdDays
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AlertPolicy holds the thresholds used to flag inventory lines.
type AlertPolicy struct {
	lowStockThreshold int
	expiryWindowDays  int
}

// NewAlertPolicy validates that both thresholds are non-negative.
func NewAlertPolicy(lowStockThreshold, expiryWindowDays int) (AlertPolicy, error) {
	if lowStockThreshold < 0 {
		return AlertPolicy{}, errs.NewValueIsOutOfRangeError("low stock threshold", lowStockThreshold, 0, "unbounded")
	}
	if expiryWindowDays < 0 {
		return AlertPolicy{}, errs.NewValueIsOutOfRangeError("expiry window days", expiryWindowDays, 0, "unbounded")
	}
	return AlertPolicy{lowStockThreshold: lowStockThreshold, expiryWindowDays: expiryWindowDays}, nil
}

// DefaultAlertPolicy flags fewer than 20 units and expirations within 15 days.
func DefaultAlertPolicy() AlertPolicy {
	return AlertPolicy{lowStockThreshold: DefaultLowStockThreshold, expiryWindowDays: DefaultExpiryWindowDays}
}

func (p AlertPolicy) LowStockThreshold() int {
	return p.lowStockThreshold
}

func (p AlertPolicy) ExpiryWindowDays() int {
	return p.expiryWindowDays
}

func (p AlertPolicy) IsLowStock(quantity int) bool {
	return IsLowStock(quantity, p.lowStockThreshold)
}

// IsExpiring is false for lines without an expiration date.
func (p AlertPolicy) IsExpiring(expiresOn *time.Time, now time.Time) bool {
	if expiresOn == nil {
		return false
	}
	return IsExpiring(*expiresOn, now, p.expiryWindowDays)
}
