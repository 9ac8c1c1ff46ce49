package test

import (
	"sync"
	"time"

	"github.com/aschey/lapwatch/internal/stopwatch"
)

// Clock is a manually advanced clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Date(2024, time.March, 1, 9, 30, 0, 0, time.Local)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Ticker hands out tick callbacks so tests can fire them by hand.
type Ticker struct {
	mu        sync.Mutex
	callbacks []func()
	active    []*TickHandle
}

type TickHandle struct {
	stopped bool
}

func (h *TickHandle) Stop() {
	h.stopped = true
}

func (h *TickHandle) Stopped() bool {
	return h.stopped
}

func NewTicker() *Ticker {
	return &Ticker{}
}

func (t *Ticker) Every(interval time.Duration, fn func()) stopwatch.TickHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	handle := &TickHandle{}
	t.callbacks = append(t.callbacks, fn)
	t.active = append(t.active, handle)
	return handle
}

// Fire runs every callback handed out so far, including ones whose handle was stopped.
func (t *Ticker) Fire() {
	t.mu.Lock()
	callbacks := append([]func(){}, t.callbacks...)
	t.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}

func (t *Ticker) Handles() []*TickHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*TickHandle{}, t.active...)
}
