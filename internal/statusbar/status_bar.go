package statusbar

import (
	"time"

	"github.com/aschey/lapwatch/internal/stopwatch"
	"github.com/nathan-fiscaletti/consolesize-go"
)

type StatusBar struct {
	statusChan   StatusChan
	stopwatch    *stopwatch.Stopwatch
	ticks        <-chan time.Duration
	refreshCh    chan struct{}
	consoleWidth func() int
}

func NewStatusBar(statusChan StatusChan, sw *stopwatch.Stopwatch) *StatusBar {
	ticks, listener := stopwatch.NewTickChannel()
	sw.SetTickListener(listener)
	return &StatusBar{
		statusChan: statusChan,
		stopwatch:  sw,
		ticks:      ticks,
		refreshCh:  make(chan struct{}, 1),
		consoleWidth: func() int {
			width, _ := consolesize.GetConsoleSize()
			return width
		},
	}
}

// Refresh asks the event loop to re-render, e.g. after a command changed the stopwatch.
func (s *StatusBar) Refresh() {
	select {
	case s.refreshCh <- struct{}{}:
	default:
	}
}

type StatusChan chan string

func NewStatusChan() StatusChan {
	return make(StatusChan, 128)
}
