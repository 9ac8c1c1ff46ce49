package statusbar

import (
	"fmt"

	"github.com/aschey/lapwatch/internal/stopwatch"
	"github.com/charmbracelet/lipgloss"
)

var (
	defaultStyle = lipgloss.NewStyle().Background(lipgloss.Color("8"))
	textStyle    = defaultStyle.Foreground(lipgloss.Color("15"))
	labelStyle   = defaultStyle.Foreground(lipgloss.Color("14"))
	separator    = defaultStyle.Foreground(lipgloss.Color("7")).Render(" | ")
	spacer       = textStyle.Render(" ")
	runningIcon  = "▶"
	stoppedIcon  = "■"
)

type label struct {
	icon string
	text string
}

func (l label) render(iconStyle lipgloss.Style) string {
	return fmt.Sprintf("%s%s", iconStyle.Render(l.icon), textStyle.Render(" "+l.text))
}

func renderStatus(state stopwatch.State) string {
	if state.Running {
		return label{icon: runningIcon, text: "Running"}.render(defaultStyle.Foreground(lipgloss.Color("10")))
	}
	return label{icon: stoppedIcon, text: "Stopped"}.render(defaultStyle.Foreground(lipgloss.Color("9")))
}

func renderLapInfo(state stopwatch.State) []string {
	info := []string{
		label{icon: "⏱", text: stopwatch.FormatDuration(state.Elapsed)}.render(labelStyle),
		label{icon: "⚑", text: fmt.Sprintf("%d", len(state.Laps))}.render(labelStyle),
	}
	highlights := stopwatch.FindHighlights(state.Laps)
	if highlights.ShowBest {
		best := state.Laps[highlights.Best]
		info = append(info, label{
			icon: "⚡",
			text: fmt.Sprintf("#%d %s", best.Index, stopwatch.FormatSplit(best.Split)),
		}.render(labelStyle))
	}
	return info
}

func renderStatusBar(state stopwatch.State, width int) string {
	paddingWidth := 2
	status := renderStatus(state)
	info := renderLapInfo(state)

	infoWidth := 0
	for _, i := range info {
		infoWidth += lipgloss.Width(i)
	}
	middleBar := lipgloss.NewStyle().
		Background(lipgloss.Color("8")).
		Width(max(width-
			lipgloss.Width(status)-
			infoWidth-
			(lipgloss.Width(separator)*(len(info)-1))-
			paddingWidth, 0)).
		Align(lipgloss.Right).
		Render("")

	parts := []string{status, middleBar}
	for i, part := range info {
		if i > 0 {
			parts = append(parts, separator)
		}
		parts = append(parts, part)
	}
	formattedStatus := lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)

	return lipgloss.JoinHorizontal(lipgloss.Bottom, spacer, formattedStatus, spacer)
}
