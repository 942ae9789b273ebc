package metadata

import (
	"fmt"
	"math"
	"time"

	"contractapi/internal/model"
)

// ExpiryNoticeWindowDays is how close an expiry must be for an upload to trigger a notice.
const ExpiryNoticeWindowDays = 90

// ReminderThresholds are the exact day counts at which the expiry sweep notifies.
var ReminderThresholds = []int{30, 15, 10, 5, 1}

// StartOfDay truncates t to midnight UTC. All day arithmetic uses UTC calendar days.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntilExpiry returns ceil((expiry - today) / 24h) where today is now truncated to
// midnight UTC. A nil expiry yields nil.
func DaysUntilExpiry(expiry *time.Time, now time.Time) *int {
	if expiry == nil {
		return nil
	}
	diff := expiry.Sub(StartOfDay(now))
	days := int(math.Ceil(diff.Hours() / 24))
	return &days
}

// ParseExpiry accepts "2006-01-02" or RFC 3339 and returns the instant in UTC.
func ParseExpiry(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid expiry date %q: expected YYYY-MM-DD or RFC 3339", s)
	}
	return t.UTC(), nil
}

// FormatExpiry renders an expiry in model.ExpiryLayout, e.g. 2099-01-01T00:00:00.000Z.
// The JSON encoding of contracts and files uses the same layout.
func FormatExpiry(t time.Time) string {
	return t.UTC().Format(model.ExpiryLayout)
}

// ResolveExpiry picks the contract expiry and status for an upload. A supplied date gives
// an active contract; no date falls back to today with action-required so someone
// corrects it by hand.
func ResolveExpiry(expiry *time.Time, now time.Time) (time.Time, string) {
	if expiry != nil {
		return expiry.UTC(), model.ContractStatusActive
	}
	return StartOfDay(now), model.ContractStatusActionRequired
}

// WithinNoticeWindow reports whether days falls in [0, ExpiryNoticeWindowDays].
func WithinNoticeWindow(days *int) bool {
	return days != nil && *days >= 0 && *days <= ExpiryNoticeWindowDays
}

// IsReminderThreshold reports whether days is exactly one of ReminderThresholds.
func IsReminderThreshold(days int) bool {
	for _, t := range ReminderThresholds {
		if days == t {
			return true
		}
	}
	return false
}
