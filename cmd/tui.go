package cmd

import (
	"fmt"

	"github.com/aschey/lapwatch/internal/lapview"
	"github.com/aschey/lapwatch/internal/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func runTUI(sw *stopwatch.Stopwatch, logger *zap.Logger) error {
	ticks, listener := stopwatch.NewTickChannel()
	sw.SetTickListener(listener)
	defer sw.SetTickListener(nil)

	logger.Info("Starting full screen mode")
	if _, err := tea.NewProgram(lapview.New(sw, ticks), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running stopwatch: %w", err)
	}
	return nil
}
