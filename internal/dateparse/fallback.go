package dateparse

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// FallbackWeight is the confidence contributed by the generic date parser
const FallbackWeight = 0.5

// FallbackFunc parses text the resolver tables did not recognise
type FallbackFunc func(input string, now time.Time) (time.Time, bool)

// absoluteLayouts are tried before the natural-language parser so that
// unambiguous absolute dates never depend on its heuristics.
var absoluteLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
}

// clockLayouts read a bare time-of-day as that time today
var clockLayouts = []string{
	"15:04",
	"3pm",
	"3:04pm",
	"3 pm",
	"3:04 pm",
}

// GenericDate is the last-resort resolver. It accepts RFC 3339 and a fixed set
// of absolute layouts, a bare clock time (today at that time), then anything
// go-dateparser understands in English. The result is expressed in now's
// location.
func GenericDate(input string, now time.Time) (result time.Time, ok bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t.In(now.Location()), true
	}
	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, input, now.Location()); err == nil {
			return t, true
		}
	}
	lower := strings.ToLower(input)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, lower); err == nil {
			return atTimeOfDay(now, t.Hour(), t.Minute()), true
		}
	}

	// Any failure inside go-dateparser, a panic included, is "no match".
	defer func() {
		if r := recover(); r != nil {
			result, ok = time.Time{}, false
		}
	}()

	cfg := &dateparser.Configuration{
		CurrentTime: now,
		Languages:   []string{"en"},
	}
	parsed, err := dateparser.Parse(cfg, input)
	if err != nil || parsed.Time.IsZero() {
		return time.Time{}, false
	}

	t := parsed.Time
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), now.Location()), true
}
