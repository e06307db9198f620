package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// monthNames holds the short and long form of every month, in order.
// A name's month index is its position divided by two.
var monthNames = []string{
	"jan", "january",
	"feb", "february",
	"mar", "march",
	"apr", "april",
	"may", "may",
	"jun", "june",
	"jul", "july",
	"aug", "august",
	"sep", "september",
	"oct", "october",
	"nov", "november",
	"dec", "december",
}

// monthDayRules are tried in order. Numeric input is read month first
// (12/25 is December 25).
var monthDayRules = table{
	family: FamilyMonthDay,
	rules: []rule{
		{
			name:    "month-day",
			pattern: regexp.MustCompile(`^([a-z]{3,})\.? (\d{1,2})(?:st|nd|rd|th)?(?: at|\s*@)?$`),
			weight:  0.75,
			resolve: func(m []string, now time.Time) (time.Time, bool) {
				return namedMonthDay(m[1], m[2], now)
			},
		},
		{
			name:    "day-month",
			pattern: regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)? (?:of )?([a-z]{3,})$`),
			weight:  0.75,
			resolve: func(m []string, now time.Time) (time.Time, bool) {
				return namedMonthDay(m[2], m[1], now)
			},
		},
		{
			name:    "numeric",
			pattern: regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})$`),
			weight:  0.75,
			resolve: func(m []string, now time.Time) (time.Time, bool) {
				month, err := strconv.Atoi(m[1])
				if err != nil {
					return time.Time{}, false
				}
				day, err := strconv.Atoi(m[2])
				if err != nil {
					return time.Time{}, false
				}
				return monthDay(month-1, day, now)
			},
		},
	},
}

// monthIndex looks a month name up by its first three letters. Returns -1
// when nothing matches.
func monthIndex(name string) int {
	if len(name) < 3 {
		return -1
	}
	prefix := name[:3]
	for i, candidate := range monthNames {
		if strings.HasPrefix(candidate, prefix) {
			return i / 2
		}
	}
	return -1
}

func namedMonthDay(name, dayStr string, now time.Time) (time.Time, bool) {
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return time.Time{}, false
	}
	return monthDay(monthIndex(name), day, now)
}

// monthDay builds the next occurrence of month (0-11) / day on or after now.
// Dates strictly before now roll forward a year.
func monthDay(month, day int, now time.Time) (time.Time, bool) {
	if month < 0 || month > 11 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	build := func(year int) (time.Time, bool) {
		m := time.Month(month + 1)
		if day > daysIn(year, m) {
			return time.Time{}, false
		}
		return time.Date(year, m, day, 0, 0, 0, 0, now.Location()), true
	}

	date, ok := build(now.Year())
	if ok && !date.Before(now) {
		return date, true
	}
	return build(now.Year() + 1)
}
