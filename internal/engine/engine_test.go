package engine

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeBiancalana/quickdate/internal/clock"
	"github.com/MikeBiancalana/quickdate/internal/display"
)

var fixedNow = time.Date(2026, 10, 16, 10, 30, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*Engine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	e, err := New(Options{Clock: clock.NewFixed(fixedNow), Logger: log, CacheSize: 16})
	require.NoError(t, err)
	return e, &buf
}

func TestEngine_Now(t *testing.T) {
	e, _ := newTestEngine(t)
	assert.True(t, fixedNow.Equal(e.Now()))

	def, err := New(Options{})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), def.Now(), time.Minute)
}

func TestEngine_ParseUsesCache(t *testing.T) {
	e, _ := newTestEngine(t)
	now := e.Now()

	first, ok := e.Parse("next friday 2pm", now)
	require.True(t, ok)
	second, ok := e.Parse("next friday 2pm", now)
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, time.Date(2026, 10, 23, 14, 0, 0, 0, time.UTC), first.Date)

	stats := e.Stats()
	assert.Equal(t, int64(2), stats.Parse.Count)
	assert.Equal(t, int64(1), stats.CacheHits)
	assert.Equal(t, int64(1), stats.CacheMisses)
	assert.Equal(t, 1, stats.CacheSize)
}

func TestEngine_Suggest(t *testing.T) {
	e, _ := newTestEngine(t)

	got := e.Suggest("", true, e.Now())
	require.Len(t, got, 4)
	assert.Equal(t, "tomorrow", got[0].Value)
	assert.Equal(t, int64(1), e.Stats().Suggest.Count)
}

func TestEngine_Due(t *testing.T) {
	e, _ := newTestEngine(t)
	now := e.Now()

	info, result := e.Due("yesterday", now)
	require.NotNil(t, result)
	assert.Equal(t, display.DueOverdue, info.Status)

	info, result = e.Due("tomorrow", now)
	require.NotNil(t, result)
	assert.Equal(t, display.DueSoon, info.Status)

	info, result = e.Due("", now)
	assert.Nil(t, result)
	assert.Equal(t, display.DueNone, info.Status)
}

func TestEngine_LogStats(t *testing.T) {
	e, buf := newTestEngine(t)
	e.Parse("tomorrow", e.Now())
	e.LogStats()

	out := buf.String()
	assert.Contains(t, out, "parse_stats")
	assert.Contains(t, out, "parse_cache_stats")
	assert.NotContains(t, out, "suggest_stats", "recorders with no samples stay quiet")
}

func TestEngine_Concurrent(t *testing.T) {
	e, _ := newTestEngine(t)
	now := e.Now()
	inputs := []string{"tomorrow", "fri", "in 3 days", "12/25", "oct 20 3pm"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, in := range inputs {
				e.Parse(in, now)
				e.Suggest(in, true, now)
			}
		}()
	}
	wg.Wait()

	want, ok := e.Parse("oct 20 3pm", now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 10, 20, 15, 0, 0, 0, time.UTC), want.Date)
}
