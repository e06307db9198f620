// Package display holds the pure formatting helpers the presentation layer
// uses to render parse results: editable and human-readable date text,
// relative phrasing, due-date classification, confidence tiers and their
// colours, and small collection helpers keyed by date.
package display

import (
	"fmt"
	"time"
)

// Layouts accepted by FormatForDisplay. Any Go reference layout works; these
// are the ones the CLI and previews use.
const (
	LayoutEditDate     = "2006-01-02"
	LayoutEditDateTime = "2006-01-02 15:04"
	LayoutShort        = "Jan 2"
	LayoutMedium       = "Jan 2, 2006"
	LayoutLong         = "Monday, January 2, 2006"
	LayoutWeekday      = "Mon, Jan 2"
	LayoutWeekdayYear  = "Mon, Jan 2, 2006"
	LayoutClock        = "3:04 PM"
)

// FormatForEditing renders t in the canonical editable form,
// YYYY-MM-DD or YYYY-MM-DD HH:MM
func FormatForEditing(t time.Time, includeTime bool) string {
	if t.IsZero() {
		return ""
	}
	if includeTime {
		return t.Format(LayoutEditDateTime)
	}
	return t.Format(LayoutEditDate)
}

// FormatForDisplay renders t with a Go layout. The zero time renders as "".
func FormatForDisplay(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if layout == "" {
		layout = LayoutMedium
	}
	return t.Format(layout)
}

// FromUnixMilli converts a millisecond timestamp to local time. Non-positive
// timestamps map to the zero time, which formats as "".
func FromUnixMilli(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// calendarDays counts whole calendar days from now's date to t's date
func calendarDays(t, now time.Time) int {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// Describe returns a short human description of t relative to now,
// e.g. "today", "tomorrow", "Monday", "in 2 weeks" or "Jan 2, 2006".
func Describe(t, now time.Time) string {
	daysDiff := calendarDays(t, now)

	switch {
	case daysDiff == 0:
		return "today"
	case daysDiff == 1:
		return "tomorrow"
	case daysDiff == -1:
		return "yesterday"
	case daysDiff >= 2 && daysDiff <= 6:
		// within the coming week the weekday is enough
		return t.Weekday().String()
	case daysDiff <= -2 && daysDiff >= -6:
		return fmt.Sprintf("%d days ago", -daysDiff)
	case daysDiff >= 7 && daysDiff < 28:
		weeks := daysDiff / 7
		if weeks == 1 {
			return "in 1 week"
		}
		return fmt.Sprintf("in %d weeks", weeks)
	}

	return t.Format(LayoutMedium)
}

// hasClockTime reports whether t carries a time-of-day other than midnight
func hasClockTime(t time.Time) bool {
	return t.Hour() != 0 || t.Minute() != 0
}

// Preview is the one-line rendering shown next to a suggestion,
// e.g. "Sat, Oct 17 at 10:00 AM (tomorrow)".
func Preview(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	layout := LayoutWeekday
	if t.Year() != now.Year() {
		layout = LayoutWeekdayYear
	}
	text := t.Format(layout)
	if hasClockTime(t) {
		text += " at " + t.Format(LayoutClock)
	}
	return text + " (" + Describe(t, now) + ")"
}
