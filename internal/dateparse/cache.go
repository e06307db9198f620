package dateparse

import (
	"fmt"
	"slices"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MikeBiancalana/quickdate/internal/perf"
)

// DefaultCacheSize is used when a non-positive size is requested
const DefaultCacheSize = 512

// cacheKey carries the zone offset as well as its name: RFC 3339 offsets
// parse into unnamed zones, and "today" depends on the offset.
type cacheKey struct {
	input  string
	now    int64
	loc    string
	offset int
}

type cacheEntry struct {
	result Result
	ok     bool
}

// CachedParser memoises Parser results per (input, now). Parsing is a pure
// function of those two values, so cached answers are always identical to
// fresh ones. Safe for concurrent use.
type CachedParser struct {
	parser *Parser
	cache  *lru.Cache[cacheKey, cacheEntry]
	hits   *perf.OpCounter
	misses *perf.OpCounter
}

// NewCachedParser wraps p with an LRU cache holding up to size results
func NewCachedParser(p *Parser, size int) (*CachedParser, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, cacheEntry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create parse cache: %w", err)
	}
	return &CachedParser{
		parser: p,
		cache:  cache,
		hits:   perf.NewOpCounter("parse_cache_hits"),
		misses: perf.NewOpCounter("parse_cache_misses"),
	}, nil
}

// Parse returns the cached result for (input, now) or computes it
func (c *CachedParser) Parse(input string, now time.Time) (Result, bool) {
	_, offset := now.Zone()
	key := cacheKey{input: input, now: now.UnixNano(), loc: now.Location().String(), offset: offset}
	if entry, ok := c.cache.Get(key); ok {
		c.hits.Inc()
		return cloneResult(entry.result), entry.ok
	}
	c.misses.Inc()

	result, ok := c.parser.Parse(input, now)
	c.cache.Add(key, cacheEntry{result: cloneResult(result), ok: ok})
	return result, ok
}

// cloneResult copies the modifier slice so callers never share it with the cache
func cloneResult(r Result) Result {
	r.Components.Modifiers = slices.Clone(r.Components.Modifiers)
	return r
}

// Hits returns the number of cache hits so far
func (c *CachedParser) Hits() int64 {
	return c.hits.Value()
}

// Misses returns the number of cache misses so far
func (c *CachedParser) Misses() int64 {
	return c.misses.Value()
}

// Len returns the number of cached entries
func (c *CachedParser) Len() int {
	return c.cache.Len()
}
