// Package dateparse interprets short free-form text as a date/time together
// with a confidence score.
//
// Text is run through a fixed cascade of resolver families. A time-of-day
// token is extracted first, then the remainder is tried against the relative,
// weekday and month/day rule tables (first match wins) and finally against a
// generic date parser. Each family that fires adds its weight to the result's
// confidence, capped at 1.0. Results below MinConfidence are never returned.
//
// Every entry point takes "now" as an explicit argument; nothing in this
// package reads the system clock.
package dateparse

import "time"

// Confidence bounds
const (
	MinConfidence = 0.3
	MaxConfidence = 1.0
)

// Family identifies a resolver family
type Family int

const (
	FamilyTime Family = iota
	FamilyRelative
	FamilyWeekday
	FamilyMonthDay
	FamilyFallback
)

func (f Family) String() string {
	switch f {
	case FamilyTime:
		return "time"
	case FamilyRelative:
		return "relative"
	case FamilyWeekday:
		return "weekday"
	case FamilyMonthDay:
		return "date"
	case FamilyFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Components records which raw substring matched which resolver family.
// An empty field means that family did not contribute.
type Components struct {
	Relative  string   `json:"relative,omitempty"`
	Time      string   `json:"time,omitempty"`
	Weekday   string   `json:"weekday,omitempty"`
	Date      string   `json:"date,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// Result is a successful parse
type Result struct {
	Date       time.Time  `json:"date"`
	Confidence float64    `json:"confidence"`
	Input      string     `json:"input"`
	Components Components `json:"components"`
}

func (c *Components) record(f Family, text string) {
	switch f {
	case FamilyTime:
		c.Time = text
	case FamilyRelative:
		c.Relative = text
	case FamilyWeekday:
		c.Weekday = text
	case FamilyMonthDay:
		c.Date = text
	case FamilyFallback:
		c.Modifiers = append(c.Modifiers, "fallback")
	}
}
