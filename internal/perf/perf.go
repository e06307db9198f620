// Package perf tracks latency and counts for parse and suggest calls.
package perf

import (
	"context"
	"log/slog"
	"math"
	"sync/atomic"
	"time"
)

// Stats is a point-in-time snapshot of a Recorder
type Stats struct {
	Name          string        `json:"name"`
	Count         int64         `json:"count"`
	TotalDuration time.Duration `json:"total_ns"`
	MinDuration   time.Duration `json:"min_ns"`
	MaxDuration   time.Duration `json:"max_ns"`
	SlowOps       int64         `json:"slow_ops"`
}

// AvgDuration is zero until something has been recorded
func (s *Stats) AvgDuration() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.TotalDuration / time.Duration(s.Count)
}

// Recorder aggregates operation latencies. Safe for concurrent use.
// Calls at or above threshold count as slow and are logged at warn level.
type Recorder struct {
	name      string
	logger    *slog.Logger
	threshold time.Duration

	count   atomic.Int64
	total   atomic.Int64
	minNs   atomic.Int64
	maxNs   atomic.Int64
	slowOps atomic.Int64
}

func NewRecorder(name string, logger *slog.Logger, threshold time.Duration) *Recorder {
	r := &Recorder{name: name, logger: logger, threshold: threshold}
	r.minNs.Store(math.MaxInt64)
	return r
}

// Start returns a func that records the time elapsed since Start was called
func (r *Recorder) Start() func() {
	start := time.Now()
	return func() { r.Record(time.Since(start)) }
}

func (r *Recorder) Record(elapsed time.Duration) {
	ns := elapsed.Nanoseconds()
	r.count.Add(1)
	r.total.Add(ns)
	swapIf(&r.minNs, ns, func(cur int64) bool { return ns < cur })
	swapIf(&r.maxNs, ns, func(cur int64) bool { return ns > cur })

	if elapsed < r.threshold {
		return
	}
	r.slowOps.Add(1)
	if r.logger != nil {
		r.logger.Warn(r.name+"_slow",
			"duration_ms", elapsed.Milliseconds(),
			"threshold_ms", r.threshold.Milliseconds())
	}
}

// swapIf stores v into a while better reports the current value should be replaced
func swapIf(a *atomic.Int64, v int64, better func(cur int64) bool) {
	for {
		cur := a.Load()
		if !better(cur) || a.CompareAndSwap(cur, v) {
			return
		}
	}
}

func (r *Recorder) Stats() Stats {
	lowest := r.minNs.Load()
	if lowest == math.MaxInt64 {
		lowest = 0
	}
	return Stats{
		Name:          r.name,
		Count:         r.count.Load(),
		TotalDuration: time.Duration(r.total.Load()),
		MinDuration:   time.Duration(lowest),
		MaxDuration:   time.Duration(r.maxNs.Load()),
		SlowOps:       r.slowOps.Load(),
	}
}

// LogStats writes one "<name>_stats" record; nothing is logged before the
// first Record
func (r *Recorder) LogStats(level slog.Level) {
	s := r.Stats()
	if s.Count == 0 || r.logger == nil {
		return
	}
	r.logger.Log(context.Background(), level, r.name+"_stats",
		"count", s.Count,
		"avg_us", s.AvgDuration().Microseconds(),
		"min_us", s.MinDuration.Microseconds(),
		"max_us", s.MaxDuration.Microseconds(),
		"slow_ops", s.SlowOps,
	)
}
