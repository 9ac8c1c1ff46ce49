package stopwatch

import (
	"sync"
	"time"
)

// DefaultTickInterval is how often a running stopwatch refreshes its elapsed time.
const DefaultTickInterval = 10 * time.Millisecond

type Clock interface {
	Now() time.Time
}

// Ticker invokes fn every interval until the returned handle is stopped.
type Ticker interface {
	Every(interval time.Duration, fn func()) TickHandle
}

type TickHandle interface {
	Stop()
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type systemTicker struct{}

func NewSystemTicker() Ticker {
	return systemTicker{}
}

func (systemTicker) Every(interval time.Duration, fn func()) TickHandle {
	handle := &tickHandle{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-handle.ticker.C:
				fn()
			case <-handle.done:
				return
			}
		}
	}()

	return handle
}

type tickHandle struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// Stop doesn't wait for an in-flight callback to return, so it's safe to call while holding
// locks that the callback takes.
func (h *tickHandle) Stop() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}

// NewTickChannel returns a channel fed by the returned tick listener. A notification is dropped
// when the previous one hasn't been consumed yet, so a slow reader never blocks the ticker.
func NewTickChannel() (chan time.Duration, func(elapsed time.Duration)) {
	ticks := make(chan time.Duration, 1)
	return ticks, func(elapsed time.Duration) {
		select {
		case ticks <- elapsed:
		default:
		}
	}
}
