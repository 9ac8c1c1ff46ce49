package lapview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Lap    key.Binding
	Reset  key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	keys := keyMap{
		Toggle: key.NewBinding(key.WithKeys(" "),
			key.WithHelp("space", "start/stop")),
		Lap: key.NewBinding(key.WithKeys("l", "L"),
			key.WithHelp("l", "lap")),
		Reset: key.NewBinding(key.WithKeys("r", "R"),
			key.WithHelp("r", "reset")),
		Up: key.NewBinding(key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit")),
	}
	// Laps can only be recorded while running.
	keys.Lap.SetEnabled(false)
	return keys
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Lap, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Lap, k.Reset}, {k.Up, k.Down, k.Quit}}
}
