package statusbar

import (
	"context"
	"os/signal"
)

func (s *StatusBar) StartEventLoop(ctx context.Context) {
	go s.eventLoop(ctx)
}

func (s *StatusBar) eventLoop(ctx context.Context) {
	sigCh := getSignalChannel()
	defer signal.Stop(sigCh)

	if !s.publish(ctx) {
		return
	}
	for {
		select {
		case <-s.ticks:
			// Stopwatch tick, the elapsed time is read again while rendering
		case <-s.refreshCh:
		case <-sigCh:
			// Resize event, don't need to do anything except re-render
		case <-ctx.Done():
			return
		}

		if !s.publish(ctx) {
			return
		}
	}
}

func (s *StatusBar) publish(ctx context.Context) bool {
	status := renderStatusBar(s.stopwatch.State(), s.consoleWidth())
	select {
	case s.statusChan <- status:
		return true
	case <-ctx.Done():
		return false
	}
}
