package dateparse

import (
	"regexp"
	"strconv"
	"time"
)

// resolveFunc turns a regexp submatch into a date. Returning false rejects the
// match and lets the dispatcher try the next rule.
type resolveFunc func(m []string, now time.Time) (time.Time, bool)

// rule is one row of a resolver table
type rule struct {
	name    string
	pattern *regexp.Regexp
	weight  float64
	resolve resolveFunc
}

// table is an ordered resolver family. The first rule that both matches and
// resolves wins.
type table struct {
	family Family
	rules  []rule
}

type match struct {
	family Family
	rule   string
	text   string
	date   time.Time
	weight float64
}

func (t table) match(text string, now time.Time) (match, bool) {
	for _, r := range t.rules {
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		date, ok := r.resolve(m, now)
		if !ok {
			continue
		}
		return match{
			family: t.family,
			rule:   r.name,
			text:   m[0],
			date:   date,
			weight: r.weight,
		}, true
	}
	return match{}, false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// atTimeOfDay overwrites the hour and minute of date
func atTimeOfDay(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

func daysFromToday(days int) resolveFunc {
	return func(_ []string, now time.Time) (time.Time, bool) {
		return startOfDay(now).AddDate(0, 0, days), true
	}
}

func monthsFromToday(months int) resolveFunc {
	return func(_ []string, now time.Time) (time.Time, bool) {
		return startOfDay(now).AddDate(0, months, 0), true
	}
}

// countedDays reads the day count from submatch 1 and applies sign
func countedDays(sign int) resolveFunc {
	return func(m []string, now time.Time) (time.Time, bool) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		return startOfDay(now).AddDate(0, 0, sign*n), true
	}
}

// daysIn returns the number of days in month (1-12) of year
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
