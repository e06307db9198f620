// Package clock supplies "now" to the outer layers of quickdate.
//
// The parsing and suggestion code never reads the system clock itself; callers
// capture a single instant from a Clock and pass it down explicitly.
package clock

import (
	"fmt"
	"time"
)

// Clock returns the current time
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in the local time zone
type System struct{}

// Now returns time.Now()
func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant. Useful for tests and for pinning the
// CLI with --now.
type Fixed struct {
	T time.Time
}

// NewFixed creates a clock frozen at t
func NewFixed(t time.Time) Fixed {
	return Fixed{T: t}
}

// Now returns the frozen instant
func (f Fixed) Now() time.Time {
	return f.T
}

// Parse interprets a --now style value. Accepted layouts are RFC 3339,
// "2006-01-02 15:04" and "2006-01-02", the latter two in loc.
func Parse(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Value: value}
}

// ParseError reports an unrecognised clock value
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time %q (expected RFC3339, YYYY-MM-DD HH:MM or YYYY-MM-DD)", e.Value)
}
