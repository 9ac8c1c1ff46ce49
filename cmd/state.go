package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/aschey/go-prompt"
	"github.com/aschey/lapwatch/internal/statusbar"
	"github.com/aschey/lapwatch/internal/stopwatch"
	"go.uber.org/zap"
)

const (
	stoppedPrefix = "stopped> "
	runningPrefix = "running> "
)

type cmdState struct {
	stopwatch *stopwatch.Stopwatch
	statusBar *statusbar.StatusBar
	curPrompt *prompt.Prompt
	out       io.Writer
	logger    *zap.Logger
	exiting   bool
}

func (state *cmdState) changeLivePrefix() (string, bool) {
	if state.stopwatch.Running() {
		return runningPrefix, true
	}
	return stoppedPrefix, true
}

func (state *cmdState) exitChecker(in string, breakline bool) bool {
	return breakline && state.exiting
}

func NewState(sw *stopwatch.Stopwatch, logger *zap.Logger, out io.Writer) *cmdState {
	statusChan := statusbar.NewStatusChan()
	state := cmdState{
		stopwatch: sw,
		statusBar: statusbar.NewStatusBar(statusChan, sw),
		out:       out,
		logger:    logger,
	}
	state.curPrompt = prompt.New(
		func(in string, selected *prompt.Suggest, _ []prompt.Suggest) { state.executor(in, selected) },
		state.completer,
		prompt.OptionPrefix(stoppedPrefix),
		prompt.OptionLivePrefix(state.changeLivePrefix),
		prompt.OptionTitle("lapwatch"),
		prompt.OptionShowCompletionAtStart(),
		prompt.OptionCompletionOnDown(),
		prompt.OptionSetExitCheckerOnInput(state.exitChecker),
		prompt.OptionStatusbarSignal(statusChan),
	)

	return &state
}

func runPrompt(sw *stopwatch.Stopwatch, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	state := NewState(sw, logger, os.Stdout)
	state.statusBar.StartEventLoop(ctx)

	logger.Info("Starting interactive prompt")
	fmt.Fprintln(state.out, infoStyle.Render("Type help for a list of commands"))
	state.curPrompt.Run()
	handleExit()
	sw.SetTickListener(nil)
	return nil
}

func handleExit() {
	rawModeOff := exec.Command("/bin/stty", "-raw", "echo")
	rawModeOff.Stdin = os.Stdin
	err := rawModeOff.Run()
	if err != nil {
		fmt.Println(err)
	}
}
