// Package biztime keeps every stored and compared timestamp in UTC.
package biztime

import "time"

// Clock returns the current instant. Services take a Clock so tests can pin
// time.
type Clock func() time.Time

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// SystemClock is the production Clock.
var SystemClock Clock = NowUTC

// FixedClock always returns t in UTC.
func FixedClock(t time.Time) Clock {
	utc := t.UTC()
	return func() time.Time { return utc }
}

// FormatISO renders t as RFC 3339 or returns nil for a nil pointer, for JSON
// fields that must be null when unset.
func FormatISO(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
