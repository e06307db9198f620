package dateparse

import (
	"log/slog"
	"strings"
	"time"

	"github.com/MikeBiancalana/quickdate/internal/logger"
)

// Parser runs the resolver cascade. The zero value is not usable; construct
// one with NewParser. A Parser holds no mutable state and is safe for
// concurrent use.
type Parser struct {
	logger   *slog.Logger
	tables   []table
	fallback FallbackFunc
}

// NewParser creates a parser with the standard resolver tables and GenericDate
// as the fallback. A nil logger falls back to the package logger.
func NewParser(log *slog.Logger) *Parser {
	return &Parser{
		logger:   logger.OrDefault(log),
		tables:   []table{relativeRules, weekdayRules, monthDayRules},
		fallback: GenericDate,
	}
}

var defaultParser = NewParser(nil)

// Parse interprets input relative to now using the default parser
func Parse(input string, now time.Time) (Result, bool) {
	return defaultParser.Parse(input, now)
}

// Parse interprets input relative to now. It returns false when nothing
// matched or the accumulated confidence is below MinConfidence; it never
// panics on malformed input.
func (p *Parser) Parse(input string, now time.Time) (Result, bool) {
	text := normalize(input)
	if text == "" {
		return Result{}, false
	}

	var (
		components Components
		confidence float64
		date       time.Time
		resolved   bool
	)

	timeMatch, rest, hasTime := extractTime(text, now)
	if hasTime {
		components.record(FamilyTime, timeMatch.text)
		confidence += timeMatch.weight
		text = rest
	}

	// a clock token the extractor rejected ("25:00", "13pm") makes the
	// input malformed, so the fallback must not guess around it
	badTime := timeShaped.MatchString(text)

	if text != "" {
		for _, t := range p.tables {
			m, ok := t.match(text, now)
			if !ok {
				continue
			}
			p.logger.Debug("resolver matched", "family", m.family.String(), "rule", m.rule, "text", m.text)
			components.record(m.family, m.text)
			if m.family == FamilyWeekday && strings.HasPrefix(m.text, "next ") {
				components.Modifiers = append(components.Modifiers, "next")
			}
			confidence += m.weight
			date = m.date
			resolved = true
			break
		}
	}

	if !resolved && p.fallback != nil && !badTime {
		if d, ok := p.fallback(input, now); ok && fallbackAgrees(d, timeMatch, hasTime) {
			p.logger.Debug("resolver matched", "family", FamilyFallback.String(), "input", input)
			components.record(FamilyFallback, input)
			confidence += FallbackWeight
			date = d
			resolved = true
		}
	}

	if !resolved {
		return Result{}, false
	}

	if confidence > MaxConfidence {
		confidence = MaxConfidence
	}
	if confidence < MinConfidence {
		return Result{}, false
	}

	if hasTime {
		date = atTimeOfDay(date, timeMatch.date.Hour(), timeMatch.date.Minute())
	}

	return Result{
		Date:       date,
		Confidence: confidence,
		Input:      input,
		Components: components,
	}, true
}

// fallbackAgrees rejects a fallback date whose clock time contradicts the
// extracted time token. A date-only reading (midnight) is fine.
func fallbackAgrees(d time.Time, tm match, hasTime bool) bool {
	if !hasTime {
		return true
	}
	if d.Hour() == 0 && d.Minute() == 0 {
		return true
	}
	return d.Hour() == tm.date.Hour() && d.Minute() == tm.date.Minute()
}
