package suggest

import (
	"log/slog"
	"strings"
	"time"

	"github.com/MikeBiancalana/quickdate/internal/dateparse"
	"github.com/MikeBiancalana/quickdate/internal/display"
	"github.com/MikeBiancalana/quickdate/internal/logger"
)

// Parser is the parse step suggestions are validated with.
// *dateparse.Parser and *dateparse.CachedParser both satisfy it.
type Parser interface {
	Parse(input string, now time.Time) (dateparse.Result, bool)
}

// Generator produces suggestions using a single parser for both the user's
// input and every candidate, so a suggestion is only offered when selecting
// it would parse.
type Generator struct {
	parser Parser
	logger *slog.Logger
}

// NewGenerator creates a generator. A nil parser uses a default
// dateparse.Parser; a nil logger uses the package logger.
func NewGenerator(parser Parser, log *slog.Logger) *Generator {
	log = logger.OrDefault(log)
	if parser == nil {
		parser = dateparse.NewParser(log)
	}
	return &Generator{parser: parser, logger: log}
}

// Suggest returns ranked completions for input as of now
func (g *Generator) Suggest(input string, timeEnabled bool, now time.Time) []Suggestion {
	empty := strings.TrimSpace(input) == ""

	var current *dateparse.Result
	if !empty {
		if r, ok := g.parser.Parse(input, now); ok {
			current = &r
		}
	}

	suggestions := Rank(g.Validate(Candidates(input, timeEnabled, current), now))
	if empty && len(suggestions) > EmptyInputLimit {
		suggestions = suggestions[:EmptyInputLimit]
	}
	return suggestions
}

// Validate parses every candidate value as of now and returns suggestions for
// the ones that resolve, in input order. Candidates keep their own confidence.
func (g *Generator) Validate(cands []Candidate, now time.Time) []Suggestion {
	out := make([]Suggestion, 0, len(cands))
	for _, c := range cands {
		result, ok := g.parser.Parse(c.Value, now)
		if !ok {
			g.logger.Debug("dropping suggestion that does not parse", "value", c.Value)
			continue
		}

		date := result.Date
		label := c.Label
		if label == "" {
			label = c.Value
		}
		out = append(out, Suggestion{
			Label:      label,
			Value:      c.Value,
			Confidence: c.Confidence,
			Preview:    display.Preview(date, now),
			ParsedDate: &date,
			Category:   c.Category,
		})
	}
	return out
}
