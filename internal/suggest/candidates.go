package suggest

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MikeBiancalana/quickdate/internal/dateparse"
	"github.com/MikeBiancalana/quickdate/internal/display"
)

// Candidate is an unvalidated suggestion produced by template expansion
type Candidate struct {
	Label      string
	Value      string
	Confidence float64
	Category   Category
}

// Confidence assigned to each candidate source
const (
	naturalBoost      = 0.2
	naturalThreshold  = 0.5
	timeCrossWeight   = 0.85
	monthWeight       = 0.65
	monthCutoff       = 0.7
	weekdayWeight     = 0.8
	nextWeekdayWeight = 0.85
	weekdayTimeFactor = 0.9
	keywordWeight     = 0.8
	keywordCutoff     = 0.8
)

// curated is offered for empty input, in order. Entries with a time-of-day
// are dropped when time suggestions are disabled.
var curated = []Candidate{
	{Value: "tomorrow", Confidence: 0.85, Category: CategoryRelative},
	{Value: "next week", Confidence: 0.8, Category: CategoryRelative},
	{Value: "next monday", Confidence: 0.8, Category: CategoryRelative},
	{Value: "tomorrow 10am", Confidence: 0.8, Category: CategoryTime},
	{Value: "end of day", Confidence: 0.75, Category: CategoryTime},
}

var (
	timeishWords = []string{"am", "pm", ":", "morning", "afternoon", "evening", "night"}
	todayTimes   = []string{"9am", "12pm", "2pm", "5pm"}
	tomorrowTime = []string{"9am", "10am", "2pm", "3pm"}
	weekdayTimes = []string{"9am", "2pm", "5pm"}
	monthDays    = []int{1, 15}
)

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type keywordFamily struct {
	pattern *regexp.Regexp
	phrases []string
}

var keywordFamilies = []keywordFamily{
	{regexp.MustCompile(`today|now`), []string{"today", "today 5pm", "end of day", "start of day"}},
	{regexp.MustCompile(`tomorrow|tom`), []string{"tomorrow", "tomorrow 9am", "tomorrow 2pm"}},
	{regexp.MustCompile(`next|week`), []string{"next week", "in a week", "next monday", "next friday"}},
	{regexp.MustCompile(`month`), []string{"next month", "in a month", "last month"}},
}

var ampm = regexp.MustCompile(`\d\s*(am|pm)\b`)

// Candidates expands input into unvalidated suggestions. current is the
// parse of the full input, or nil when it did not parse; it decides the
// natural echo and gates the month and keyword sources.
func Candidates(input string, timeEnabled bool, current *dateparse.Result) []Candidate {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return curatedCandidates(timeEnabled)
	}

	var out []Candidate

	if current != nil && current.Confidence > naturalThreshold {
		out = append(out, Candidate{
			Label:      strings.TrimSpace(input) + " → " + naturalPreview(current.Date),
			Value:      input,
			Confidence: math.Min(roundScore(current.Confidence+naturalBoost), dateparse.MaxConfidence),
			Category:   CategoryNatural,
		})
	}

	if timeEnabled && isTimeish(text) {
		out = append(out, timeCross()...)
	}

	if current == nil || current.Confidence < monthCutoff {
		out = append(out, monthCandidates(text)...)
	}

	out = append(out, weekdayCandidates(text, timeEnabled)...)

	if current == nil || current.Confidence < keywordCutoff {
		out = append(out, keywordCandidates(text, timeEnabled)...)
	}

	return out
}

func curatedCandidates(timeEnabled bool) []Candidate {
	out := make([]Candidate, 0, len(curated))
	for _, c := range curated {
		if c.Category == CategoryTime && !timeEnabled {
			continue
		}
		out = append(out, c)
	}
	return out
}

func naturalPreview(t time.Time) string {
	text := display.FormatForDisplay(t, display.LayoutWeekdayYear)
	if t.Hour() != 0 || t.Minute() != 0 {
		text += " " + display.FormatForDisplay(t, display.LayoutClock)
	}
	return text
}

// roundScore drops float noise from derived scores before tier comparisons
func roundScore(c float64) float64 {
	return math.Round(c*1000) / 1000
}

func isTimeish(text string) bool {
	for _, w := range timeishWords {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func hasTimeOfDay(phrase string) bool {
	return ampm.MatchString(phrase)
}

func timeCross() []Candidate {
	out := make([]Candidate, 0, len(todayTimes)+len(tomorrowTime))
	for _, t := range todayTimes {
		out = append(out, Candidate{Value: "today " + t, Confidence: timeCrossWeight, Category: CategoryTime})
	}
	for _, t := range tomorrowTime {
		out = append(out, Candidate{Value: "tomorrow " + t, Confidence: timeCrossWeight, Category: CategoryTime})
	}
	return out
}

// monthCandidates offers the 1st and 15th of the first month whose
// abbreviation contains text, or is contained in it
func monthCandidates(text string) []Candidate {
	for m := time.January; m <= time.December; m++ {
		abbr := strings.ToLower(m.String()[:3])
		if !strings.Contains(abbr, text) && !strings.Contains(text, abbr) {
			continue
		}

		var out []Candidate
		for _, d := range monthDays {
			if d > daysInMonth(m) {
				continue
			}
			out = append(out, Candidate{
				Value:      m.String()[:3] + " " + strconv.Itoa(d),
				Confidence: monthWeight,
				Category:   CategoryDate,
			})
		}
		return out
	}
	return nil
}

// daysInMonth counts days in m for a leap year; validation rejects Feb 29
// in common years.
func daysInMonth(m time.Month) int {
	return time.Date(2024, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func weekdayCandidates(text string, timeEnabled bool) []Candidate {
	var out []Candidate
	for _, name := range weekdays {
		abbr := name[:3]
		if !strings.Contains(name, text) && !strings.Contains(text, name) &&
			!strings.Contains(abbr, text) && !strings.Contains(text, abbr) {
			continue
		}

		forms := []Candidate{
			{Value: name, Confidence: weekdayWeight, Category: CategoryRelative},
			{Value: "next " + name, Confidence: nextWeekdayWeight, Category: CategoryRelative},
		}
		out = append(out, forms...)
		if !timeEnabled {
			continue
		}
		for _, f := range forms {
			for _, t := range weekdayTimes {
				out = append(out, Candidate{
					Value:      f.Value + " " + t,
					Confidence: roundScore(f.Confidence * weekdayTimeFactor),
					Category:   CategoryTime,
				})
			}
		}
	}
	return out
}

// keywordCandidates uses the first family whose pattern matches text
func keywordCandidates(text string, timeEnabled bool) []Candidate {
	for _, fam := range keywordFamilies {
		if !fam.pattern.MatchString(text) {
			continue
		}

		var out []Candidate
		for _, phrase := range fam.phrases {
			category := CategoryRelative
			if hasTimeOfDay(phrase) {
				if !timeEnabled {
					continue
				}
				category = CategoryTime
			}
			out = append(out, Candidate{Value: phrase, Confidence: keywordWeight, Category: category})
		}
		return out
	}
	return nil
}
