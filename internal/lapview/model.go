package lapview

import (
	"fmt"
	"time"

	"github.com/aschey/lapwatch/internal/stopwatch"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 40
	defaultHeight = 10
	// Lines used by everything above and below the lap list.
	chromeHeight = 14
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")).MarginBottom(1)
	timeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 2)
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")).MarginTop(1)
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).PaddingLeft(4)
	helpStyle    = lipgloss.NewStyle().PaddingLeft(2).MarginTop(1)
)

type tickMsg time.Duration

type Model struct {
	stopwatch *stopwatch.Stopwatch
	ticks     <-chan time.Duration
	keys      keyMap
	help      help.Model
	laps      list.Model
	state     stopwatch.State
	quitting  bool
}

// New creates the model. ticks receives the stopwatch's tick notifications; it may be nil when
// nothing needs to refresh the display between key presses.
func New(sw *stopwatch.Stopwatch, ticks <-chan time.Duration) Model {
	l := list.New([]list.Item{}, itemDelegate{}, defaultWidth, defaultHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)

	m := Model{
		stopwatch: sw,
		ticks:     ticks,
		keys:      newKeyMap(),
		help:      help.New(),
		laps:      l,
	}
	m.refresh()
	return m
}

func waitForTick(ticks <-chan time.Duration) tea.Cmd {
	if ticks == nil {
		return nil
	}
	return func() tea.Msg {
		elapsed, ok := <-ticks
		if !ok {
			return nil
		}
		return tickMsg(elapsed)
	}
}

func (m Model) Init() tea.Cmd {
	return waitForTick(m.ticks)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.refresh()
		return m, waitForTick(m.ticks)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.laps.SetSize(msg.Width, max(msg.Height-chromeHeight, 3))
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.stopwatch.Toggle()
		case key.Matches(msg, m.keys.Lap):
			m.stopwatch.Lap()
		case key.Matches(msg, m.keys.Reset):
			m.stopwatch.Reset()
		case key.Matches(msg, m.keys.Up, m.keys.Down):
			m.laps, cmd = m.laps.Update(msg)
		}
		m.refresh()
		return m, cmd

	default:
		return m, nil
	}
}

func (m *Model) refresh() {
	previous := len(m.state.Laps)
	m.state = m.stopwatch.State()
	m.keys.Lap.SetEnabled(m.state.Running)
	if len(m.state.Laps) != previous || previous == 0 {
		m.laps.SetItems(getItems(m.state.Laps))
		m.laps.Select(0)
	}
}

func (m Model) State() stopwatch.State {
	return m.state
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := " "
	if m.state.Running {
		status = runningStyle.Render("● Running")
	}
	timer := lipgloss.JoinVertical(lipgloss.Center,
		timeStyle.Render(stopwatch.FormatDuration(m.state.Elapsed)),
		captionStyle.Render("MM:SS:CC"),
		status,
	)

	header := headerStyle.Render("Lap Times") + " " + countStyle.Render(fmt.Sprintf("(%d)", len(m.state.Laps)))
	laps := m.laps.View()
	if len(m.state.Laps) == 0 {
		laps = lipgloss.JoinVertical(lipgloss.Left,
			emptyStyle.Render("No lap times recorded yet"),
			emptyStyle.Render("Start the timer and press L to record times"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("⏱ Stopwatch"),
		timer,
		header,
		laps,
		helpStyle.Render(m.help.View(m.keys)),
	)
}
