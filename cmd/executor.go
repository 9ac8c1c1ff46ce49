package cmd

import (
	"fmt"
	"strings"

	"github.com/aschey/go-prompt"
	"github.com/aschey/lapwatch/internal"
	"github.com/aschey/lapwatch/internal/stopwatch"
	"github.com/aschey/lapwatch/internal/summary"
	"github.com/charmbracelet/lipgloss"
)

const (
	startCmdText  = "start"
	stopCmdText   = "stop"
	toggleCmdText = "toggle"
	lapCmdText    = "lap"
	resetCmdText  = "reset"
	lapsCmdText   = "laps"
	statusCmdText = "status"
	helpCmdText   = "help"
	exitCmdText   = "exit"
	quitCmdText   = "q"
)

type promptCommand struct {
	text        string
	description string
}

var promptCommands = []promptCommand{
	{startCmdText, "Start the stopwatch"},
	{stopCmdText, "Stop the stopwatch"},
	{toggleCmdText, "Start or stop the stopwatch"},
	{lapCmdText, "Record a lap while running"},
	{resetCmdText, "Stop the stopwatch and clear all laps"},
	{lapsCmdText, "List recorded laps"},
	{statusCmdText, "Show elapsed time and state"},
	{helpCmdText, "List commands"},
	{exitCmdText, "Quit interactive prompt"},
	{quitCmdText, "Alias for exit"},
}

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (state *cmdState) executor(in string, selected *prompt.Suggest) {
	cmds := strings.Fields(strings.ToLower(in))
	if len(cmds) == 0 {
		return
	}

	state.executeCmd(cmds[0])
	state.statusBar.Refresh()
}

func (state *cmdState) executeCmd(cmd string) {
	sw := state.stopwatch
	switch cmd {
	case startCmdText:
		if !sw.Start() {
			state.printInfo("The stopwatch is already running")
			return
		}
		state.printInfo("Started at " + stopwatch.FormatDuration(sw.Elapsed()))
	case stopCmdText:
		if !sw.Stop() {
			state.printInfo("The stopwatch isn't running")
			return
		}
		state.printInfo("Stopped at " + stopwatch.FormatDuration(sw.Elapsed()))
	case toggleCmdText:
		sw.Toggle()
		if sw.Running() {
			state.printInfo("Started at " + stopwatch.FormatDuration(sw.Elapsed()))
		} else {
			state.printInfo("Stopped at " + stopwatch.FormatDuration(sw.Elapsed()))
		}
	case lapCmdText:
		lap, ok := sw.Lap()
		if !ok {
			state.printInfo("The stopwatch isn't running")
			return
		}
		state.printInfo(fmt.Sprintf("Lap %d  %s  %s",
			lap.Index,
			stopwatch.FormatDuration(lap.Absolute),
			stopwatch.FormatSplit(lap.Split)))
	case resetCmdText:
		sw.Reset()
		state.printInfo("Reset")
	case lapsCmdText:
		laps := sw.State()
		if len(laps.Laps) == 0 {
			state.printInfo("No lap times recorded yet")
			return
		}
		fmt.Fprintln(state.out, summary.Text(laps))
	case statusCmdText:
		current := sw.State()
		status := "Stopped"
		if current.Running {
			status = "Running"
		}
		state.printInfo(fmt.Sprintf("%s  %s  %d lap(s)", status, stopwatch.FormatDuration(current.Elapsed), len(current.Laps)))
	case helpCmdText:
		rows := []string{}
		for _, c := range promptCommands {
			rows = append(rows, fmt.Sprintf("%-7s %s", c.text, infoStyle.Render(c.description)))
		}
		fmt.Fprintln(state.out, internal.PrettyPrintList(rows))
	case exitCmdText, quitCmdText:
		state.exiting = true
	default:
		fmt.Fprintln(state.out, errorStyle.Render(fmt.Sprintf("Unknown command %q. Type %s for a list of commands.", cmd, helpCmdText)))
	}
}

func (state *cmdState) printInfo(message string) {
	fmt.Fprintln(state.out, infoStyle.Render(message))
}
