// Package engine wires the parser, the suggestion generator and their
// supporting pieces (clock, parse cache, latency recorders) behind one type
// the CLI and HTTP adapter share.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/MikeBiancalana/quickdate/internal/clock"
	"github.com/MikeBiancalana/quickdate/internal/dateparse"
	"github.com/MikeBiancalana/quickdate/internal/display"
	"github.com/MikeBiancalana/quickdate/internal/logger"
	"github.com/MikeBiancalana/quickdate/internal/perf"
	"github.com/MikeBiancalana/quickdate/internal/suggest"
)

// DefaultSlowThreshold is the latency above which an operation is logged as slow
const DefaultSlowThreshold = 50 * time.Millisecond

// Options configures New. Zero values pick defaults.
type Options struct {
	Clock         clock.Clock
	Logger        *slog.Logger
	CacheSize     int
	SlowThreshold time.Duration
}

// Engine is safe for concurrent use
type Engine struct {
	clock     clock.Clock
	logger    *slog.Logger
	parser    *dateparse.CachedParser
	generator *suggest.Generator
	parseRec  *perf.Recorder
	suggRec   *perf.Recorder
}

// New creates an engine
func New(opts Options) (*Engine, error) {
	log := logger.OrDefault(opts.Logger)
	clk := opts.Clock
	if clk == nil {
		clk = clock.System{}
	}
	threshold := opts.SlowThreshold
	if threshold <= 0 {
		threshold = DefaultSlowThreshold
	}

	cached, err := dateparse.NewCachedParser(dateparse.NewParser(log), opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	return &Engine{
		clock:     clk,
		logger:    log,
		parser:    cached,
		generator: suggest.NewGenerator(cached, log),
		parseRec:  perf.NewRecorder("parse", log, threshold),
		suggRec:   perf.NewRecorder("suggest", log, threshold),
	}, nil
}

// Now reads the engine's clock. Capture it once per user action and pass the
// same value to Parse and Suggest.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// Parse interprets input as of now
func (e *Engine) Parse(input string, now time.Time) (dateparse.Result, bool) {
	defer e.parseRec.Start()()
	return e.parser.Parse(input, now)
}

// Suggest returns ranked completions for input as of now
func (e *Engine) Suggest(input string, timeEnabled bool, now time.Time) []suggest.Suggestion {
	defer e.suggRec.Start()()
	return e.generator.Suggest(input, timeEnabled, now)
}

// Due parses input and classifies the result as a due date. Input that does
// not parse is reported as having no due date.
func (e *Engine) Due(input string, now time.Time) (display.DueInfo, *dateparse.Result) {
	result, ok := e.Parse(input, now)
	if !ok {
		return display.DueDateStatus(nil, now), nil
	}
	return display.DueDateStatus(&result.Date, now), &result
}

// Stats is a snapshot of engine counters
type Stats struct {
	Parse       perf.Stats `json:"parse"`
	Suggest     perf.Stats `json:"suggest"`
	CacheHits   int64      `json:"cache_hits"`
	CacheMisses int64      `json:"cache_misses"`
	CacheSize   int        `json:"cache_size"`
}

// Stats returns current counters
func (e *Engine) Stats() Stats {
	return Stats{
		Parse:       e.parseRec.Stats(),
		Suggest:     e.suggRec.Stats(),
		CacheHits:   e.parser.Hits(),
		CacheMisses: e.parser.Misses(),
		CacheSize:   e.parser.Len(),
	}
}

// LogStats writes latency and cache counters to the engine logger
func (e *Engine) LogStats() {
	e.parseRec.LogStats(slog.LevelInfo)
	e.suggRec.LogStats(slog.LevelInfo)
	e.logger.Info("parse_cache_stats",
		"hits", e.parser.Hits(),
		"misses", e.parser.Misses(),
		"entries", e.parser.Len())
}
