package lapview

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aschey/lapwatch/internal/stopwatch"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	bestMarker  = " ⚡ Best"
	worstMarker = " 🐌 Slowest"
)

var (
	itemStyle      = lipgloss.NewStyle().PaddingLeft(4)
	bestItemStyle  = itemStyle.Foreground(lipgloss.Color("10"))
	worstItemStyle = itemStyle.Foreground(lipgloss.Color("9"))
	clockStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type item struct {
	lap   stopwatch.Lap
	best  bool
	worst bool
}

type itemDelegate struct{}

func (i item) FilterValue() string { return strconv.Itoa(i.lap.Index) }

func (i item) text() string {
	split := stopwatch.FormatSplit(i.lap.Split)
	if i.best {
		split += bestMarker
	} else if i.worst {
		split += worstMarker
	}
	return fmt.Sprintf("%2d  %s  %s", i.lap.Index, stopwatch.FormatDuration(i.lap.Absolute), split)
}

func (i item) style() lipgloss.Style {
	switch {
	case i.best:
		return bestItemStyle
	case i.worst:
		return worstItemStyle
	default:
		return itemStyle
	}
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i := listItem.(item)

	style := i.style()
	str := i.text()
	if index == m.Index() {
		style = style.PaddingLeft(2)
		str = "▶ " + str
	}

	fmt.Fprint(w, style.Render(str)+"  "+clockStyle.Render(stopwatch.FormatClock(i.lap.RecordedAt)))
}

// getItems lists the newest lap first.
func getItems(laps []stopwatch.Lap) []list.Item {
	highlights := stopwatch.FindHighlights(laps)
	items := []list.Item{}
	for i := len(laps) - 1; i >= 0; i-- {
		items = append(items, item{
			lap:   laps[i],
			best:  highlights.IsBest(i),
			worst: highlights.IsWorst(i),
		})
	}

	return items
}
