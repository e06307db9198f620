package perf

import "sync/atomic"

// OpCounter is a named atomic counter, used for cache hits and misses
type OpCounter struct {
	name string
	n    atomic.Int64
}

func NewOpCounter(name string) *OpCounter {
	return &OpCounter{name: name}
}

func (c *OpCounter) Name() string { return c.name }

func (c *OpCounter) Inc() { c.n.Add(1) }

func (c *OpCounter) Value() int64 { return c.n.Load() }

func (c *OpCounter) Reset() { c.n.Store(0) }
