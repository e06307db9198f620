package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeWeight is the confidence contributed by an extracted time-of-day
const TimeWeight = 0.3

// timeRules are unanchored: the token may appear anywhere in the text
var timeRules = table{
	family: FamilyTime,
	rules: []rule{
		{
			name:    "12h",
			pattern: regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`),
			weight:  TimeWeight,
			resolve: func(m []string, now time.Time) (time.Time, bool) {
				return clockTime(m[1], m[2], m[3], now)
			},
		},
		{
			name:    "24h",
			pattern: regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`),
			weight:  TimeWeight,
			resolve: func(m []string, now time.Time) (time.Time, bool) {
				return clockTime(m[1], m[2], "", now)
			},
		},
		{
			name:    "hour-meridiem",
			pattern: regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`),
			weight:  TimeWeight,
			resolve: func(m []string, now time.Time) (time.Time, bool) {
				return clockTime(m[1], "", m[2], now)
			},
		},
	},
}

// timeShaped spots clock-like tokens whether or not they are in range
var timeShaped = regexp.MustCompile(`\b\d{1,2}(?::\d{2})?\s*(?:am|pm)\b|\b\d{1,2}:\d{2}\b`)

// clockTime converts hour/minute/meridiem strings into a time on now's day
func clockTime(hourStr, minuteStr, meridiem string, now time.Time) (time.Time, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return time.Time{}, false
	}
	minute := 0
	if minuteStr != "" {
		if minute, err = strconv.Atoi(minuteStr); err != nil {
			return time.Time{}, false
		}
	}

	switch meridiem {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, false
	}
	return atTimeOfDay(now, hour, minute), true
}

// extractTime finds a time-of-day token in text. It returns the match and the
// text with the token removed.
func extractTime(text string, now time.Time) (match, string, bool) {
	m, ok := timeRules.match(text, now)
	if !ok {
		return match{}, text, false
	}
	rest := normalize(strings.Replace(text, m.text, " ", 1))
	return m, rest, true
}

// normalize lower-cases, trims and collapses inner whitespace
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
