package stopwatch

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type Lap struct {
	Index      int
	Absolute   time.Duration
	Split      time.Duration
	RecordedAt time.Time
}

type State struct {
	Elapsed time.Duration
	Running bool
	Laps    []Lap
}

// Stopwatch tracks elapsed running time and lap splits. Elapsed time is always derived from the
// clock relative to a reference start instant, so ticks only decide how often it's refreshed.
type Stopwatch struct {
	mu       sync.Mutex
	clock    Clock
	ticker   Ticker
	interval time.Duration
	logger   *zap.Logger
	listener func(elapsed time.Duration)

	elapsed   time.Duration
	startedAt time.Time
	running   bool
	laps      []Lap

	tick       TickHandle
	generation uint64
	closed     bool
}

func New(clock Clock, ticker Ticker, logger *zap.Logger, interval time.Duration) *Stopwatch {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Stopwatch{
		clock:    clock,
		ticker:   ticker,
		interval: interval,
		logger:   logger,
		laps:     []Lap{},
	}
}

// SetTickListener registers a callback that runs after every applied tick. It's called from the
// ticker goroutine and must not block.
func (s *Stopwatch) SetTickListener(listener func(elapsed time.Duration)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = listener
}

// Start resumes timing from the current elapsed time. It returns false when the stopwatch was
// already running.
func (s *Stopwatch) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start()
}

// Stop freezes the elapsed time. It returns false when the stopwatch wasn't running.
func (s *Stopwatch) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop()
}

func (s *Stopwatch) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.stop()
	} else {
		s.start()
	}
}

func (s *Stopwatch) start() bool {
	if s.running {
		return false
	}
	s.startedAt = s.clock.Now().Add(-s.elapsed)
	s.running = true
	s.acquireTick()
	s.logger.Debug("Stopwatch started", zap.Duration("elapsed", s.elapsed))
	return true
}

func (s *Stopwatch) stop() bool {
	if !s.running {
		return false
	}
	s.refresh()
	s.running = false
	s.releaseTick()
	s.logger.Debug("Stopwatch stopped", zap.Duration("elapsed", s.elapsed))
	return true
}

// Lap records a checkpoint at the current elapsed time. It returns false without recording
// anything when the stopwatch isn't running.
func (s *Stopwatch) Lap() (Lap, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return Lap{}, false
	}
	s.refresh()

	split := s.elapsed
	if len(s.laps) > 0 {
		split -= s.laps[len(s.laps)-1].Absolute
	}
	lap := Lap{
		Index:      len(s.laps) + 1,
		Absolute:   s.elapsed,
		Split:      split,
		RecordedAt: s.clock.Now(),
	}
	s.laps = append(s.laps, lap)
	s.logger.Debug("Lap recorded",
		zap.Int("index", lap.Index),
		zap.Duration("absolute", lap.Absolute),
		zap.Duration("split", lap.Split))

	return lap, true
}

func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseTick()
	s.running = false
	s.elapsed = 0
	s.startedAt = time.Time{}
	s.laps = []Lap{}
	s.logger.Debug("Stopwatch reset")
}

// Tick refreshes the elapsed time of a running stopwatch and notifies the tick listener, the
// same as a tick from the current tick source.
func (s *Stopwatch) Tick() {
	s.mu.Lock()
	generation := s.generation
	s.mu.Unlock()
	s.onTick(generation)
}

func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.refresh()
	}
	return s.elapsed
}

func (s *Stopwatch) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.refresh()
	}
	laps := make([]Lap, len(s.laps))
	copy(laps, s.laps)
	return State{Elapsed: s.elapsed, Running: s.running, Laps: laps}
}

// Close releases the tick source. The stopwatch keeps its state, but it won't be refreshed by
// ticks anymore.
func (s *Stopwatch) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.running {
		s.refresh()
	}
	s.releaseTick()
	s.closed = true
	s.logger.Debug("Stopwatch closed")
}

func (s *Stopwatch) refresh() {
	elapsed := s.clock.Now().Sub(s.startedAt).Truncate(time.Millisecond)
	// A clock that steps backwards must not make elapsed time go down.
	if elapsed > s.elapsed {
		s.elapsed = elapsed
	}
}

func (s *Stopwatch) acquireTick() {
	s.releaseTick()
	if s.closed || s.ticker == nil {
		return
	}
	generation := s.generation
	s.tick = s.ticker.Every(s.interval, func() {
		s.onTick(generation)
	})
}

func (s *Stopwatch) releaseTick() {
	s.generation++
	if s.tick != nil {
		s.tick.Stop()
		s.tick = nil
	}
}

func (s *Stopwatch) onTick(generation uint64) {
	s.mu.Lock()
	if generation != s.generation || !s.running {
		s.mu.Unlock()
		return
	}
	s.refresh()
	elapsed := s.elapsed
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener(elapsed)
	}
}
