package summary

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aschey/lapwatch/internal"
	"github.com/aschey/lapwatch/internal/config"
	"github.com/aschey/lapwatch/internal/stopwatch"
	"github.com/charmbracelet/lipgloss"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	bestMarker  = "⚡ Best"
	worstMarker = "🐌 Slowest"
)

var (
	splitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	clockStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	bestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	worstStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
)

func Write(w io.Writer, state stopwatch.State, format config.SummaryFormat) error {
	switch format {
	case config.SummaryNone:
		return nil
	case config.SummaryJSON:
		out, err := JSON(state)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	default:
		_, err := fmt.Fprintln(w, Text(state))
		return err
	}
}

func Text(state stopwatch.State) string {
	total := totalStyle.Render("Total") + " " + stopwatch.FormatDuration(state.Elapsed)
	if len(state.Laps) == 0 {
		return total
	}

	highlights := stopwatch.FindHighlights(state.Laps)
	rows := []string{}
	for i, lap := range state.Laps {
		row := fmt.Sprintf("%s  %s  %s",
			stopwatch.FormatDuration(lap.Absolute),
			splitStyle.Render(stopwatch.FormatSplit(lap.Split)),
			clockStyle.Render(stopwatch.FormatClock(lap.RecordedAt)))
		if highlights.IsBest(i) {
			row += "  " + bestStyle.Render(bestMarker)
		} else if highlights.IsWorst(i) {
			row += "  " + worstStyle.Render(worstMarker)
		}
		rows = append(rows, row)
	}

	return strings.Join([]string{internal.PrettyPrintList(rows), total}, "\n")
}

// JSON renders the session as a protobuf Struct so the output follows protojson's formatting.
func JSON(state stopwatch.State) (string, error) {
	laps := []any{}
	for _, lap := range state.Laps {
		laps = append(laps, map[string]any{
			"index":      lap.Index,
			"absoluteMs": lap.Absolute.Milliseconds(),
			"splitMs":    lap.Split.Milliseconds(),
			"recordedAt": lap.RecordedAt.Format(time.RFC3339),
		})
	}
	fields := map[string]any{
		"elapsedMs": state.Elapsed.Milliseconds(),
		"running":   state.Running,
		"laps":      laps,
	}

	highlights := stopwatch.FindHighlights(state.Laps)
	if highlights.ShowBest {
		fields["best"] = state.Laps[highlights.Best].Index
	}
	if highlights.IsWorst(highlights.Worst) {
		fields["worst"] = state.Laps[highlights.Worst].Index
	}

	msg, err := structpb.NewStruct(fields)
	if err != nil {
		return "", fmt.Errorf("building summary: %w", err)
	}
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("marshalling summary: %w", err)
	}
	return string(out), nil
}
