package cmd

import (
	"strings"

	"github.com/aschey/go-prompt"
)

func (state *cmdState) completer(in prompt.Document, returnChan chan []prompt.Suggest) {
	before := strings.Split(in.TextBeforeCursor(), " ")
	if len(before) > 1 {
		// Commands don't take arguments
		returnChan <- []prompt.Suggest{}
		return
	}

	cmds := []prompt.Suggest{}
	for _, c := range promptCommands {
		if c.text == lapCmdText && !state.stopwatch.Running() {
			continue
		}
		cmds = append(cmds, prompt.Suggest{Text: c.text, Description: c.description})
	}

	returnChan <- prompt.FilterHasPrefix(cmds, in.GetWordBeforeCursor(), true)
}
