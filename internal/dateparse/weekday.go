package dateparse

import (
	"regexp"
	"time"
)

const weekdayNames = `monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tues|tue|wed|thurs|thur|thu|fri|sat|sun`

// weekdayByName maps full names and abbreviations to ISO weekday numbers
// (Monday=1 ... Sunday=7).
var weekdayByName = map[string]int{
	"monday": 1, "mon": 1,
	"tuesday": 2, "tues": 2, "tue": 2,
	"wednesday": 3, "wed": 3,
	"thursday": 4, "thurs": 4, "thur": 4, "thu": 4,
	"friday": 5, "fri": 5,
	"saturday": 6, "sat": 6,
	"sunday": 7, "sun": 7,
}

var weekdayRules = table{
	family: FamilyWeekday,
	rules: []rule{
		{
			name:    "next-weekday",
			pattern: regexp.MustCompile(`^next (` + weekdayNames + `)$`),
			weight:  0.85,
			resolve: func(m []string, now time.Time) (time.Time, bool) {
				return nextWeekday(m[1], true, now)
			},
		},
		{
			name:    "weekday",
			pattern: regexp.MustCompile(`^(` + weekdayNames + `)$`),
			weight:  0.8,
			resolve: func(m []string, now time.Time) (time.Time, bool) {
				return nextWeekday(m[1], false, now)
			},
		},
	},
}

// isoWeekday numbers Monday=1 ... Sunday=7
func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

// nextWeekday resolves a weekday name relative to now. Today's weekday and
// anything prefixed with "next" both land in the following week.
func nextWeekday(name string, next bool, now time.Time) (time.Time, bool) {
	target, ok := weekdayByName[name]
	if !ok {
		return time.Time{}, false
	}

	delta := target - isoWeekday(now)
	if next || delta <= 0 {
		delta += 7
	}
	return startOfDay(now).AddDate(0, 0, delta), true
}
