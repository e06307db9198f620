package dateparse

import (
	"regexp"
	"time"
)

// relativeRules match the whole remaining text. Day offsets land at the start
// of the target day.
var relativeRules = table{
	family: FamilyRelative,
	rules: []rule{
		{name: "today", pattern: regexp.MustCompile(`^(?:today|now)$`), weight: 0.9, resolve: daysFromToday(0)},
		{name: "tomorrow", pattern: regexp.MustCompile(`^tomorrow$`), weight: 0.9, resolve: daysFromToday(1)},
		{name: "yesterday", pattern: regexp.MustCompile(`^yesterday$`), weight: 0.9, resolve: daysFromToday(-1)},
		{name: "next-week", pattern: regexp.MustCompile(`^(?:next week|in a week)$`), weight: 0.8, resolve: daysFromToday(7)},
		{name: "last-week", pattern: regexp.MustCompile(`^(?:last week|a week ago)$`), weight: 0.8, resolve: daysFromToday(-7)},
		{name: "next-month", pattern: regexp.MustCompile(`^(?:next month|in a month)$`), weight: 0.8, resolve: monthsFromToday(1)},
		{name: "last-month", pattern: regexp.MustCompile(`^(?:last month|a month ago)$`), weight: 0.8, resolve: monthsFromToday(-1)},
		{name: "in-n-days", pattern: regexp.MustCompile(`^in (\d+) days?$`), weight: 0.85, resolve: countedDays(1)},
		{name: "n-days-ago", pattern: regexp.MustCompile(`^(\d+) days? ago$`), weight: 0.85, resolve: countedDays(-1)},
		{
			name:    "end-of-day",
			pattern: regexp.MustCompile(`^(?:end of day|eod)$`),
			weight:  0.7,
			resolve: func(_ []string, now time.Time) (time.Time, bool) {
				return endOfDay(now), true
			},
		},
		{name: "start-of-day", pattern: regexp.MustCompile(`^(?:start of day|beginning of day)$`), weight: 0.7, resolve: daysFromToday(0)},
	},
}
