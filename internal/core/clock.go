package core

import (
	"sync"
	"time"
)

// Clock returns milliseconds elapsed since a fixed reference point.
// Readings must be monotonic within one session.
type Clock interface {
	ElapsedMilliseconds() int64
}

// SystemClock measures time from its creation using the monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose reference point is now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// ElapsedMilliseconds returns the milliseconds elapsed since the clock was created.
func (c *SystemClock) ElapsedMilliseconds() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is a controllable clock for tests and replays.
type ManualClock struct {
	mu  sync.RWMutex
	now int64
}

// NewManualClock creates a manual clock starting at the given reading.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

// ElapsedMilliseconds returns the current manual reading.
func (c *ManualClock) ElapsedMilliseconds() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set moves the clock to an absolute reading.
func (c *ManualClock) Set(ms int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = ms
}

// Advance moves the clock forward by the given amount of milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += ms
}
