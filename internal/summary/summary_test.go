package summary

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/MarvinJWendt/testza"
	"github.com/aschey/lapwatch/internal/config"
	"github.com/aschey/lapwatch/internal/stopwatch"
)

var recordedAt = time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

func testState(splits ...int) stopwatch.State {
	state := stopwatch.State{Laps: []stopwatch.Lap{}}
	for i, split := range splits {
		d := time.Duration(split) * time.Millisecond
		state.Elapsed += d
		state.Laps = append(state.Laps, stopwatch.Lap{
			Index:      i + 1,
			Absolute:   state.Elapsed,
			Split:      d,
			RecordedAt: recordedAt,
		})
	}
	return state
}

type jsonSummary struct {
	ElapsedMs float64 `json:"elapsedMs"`
	Running   bool    `json:"running"`
	Best      *float64
	Worst     *float64
	Laps      []struct {
		Index      float64 `json:"index"`
		AbsoluteMs float64 `json:"absoluteMs"`
		SplitMs    float64 `json:"splitMs"`
		RecordedAt string  `json:"recordedAt"`
	} `json:"laps"`
}

func decode(t *testing.T, state stopwatch.State) jsonSummary {
	out, err := JSON(state)
	testza.AssertNoError(t, err)
	var decoded jsonSummary
	testza.AssertNoError(t, json.Unmarshal([]byte(out), &decoded))
	return decoded
}

func TestTextWithoutLaps(t *testing.T) {
	out := Text(stopwatch.State{Elapsed: 61 * time.Second})
	testza.AssertTrue(t, strings.HasSuffix(out, "01:01:00"))
	testza.AssertEqual(t, 1, strings.Count(out, "\n")+1)
}

func TestTextMarksBestAndSlowest(t *testing.T) {
	out := Text(testState(500, 200, 800))
	lines := strings.Split(out, "\n")
	testza.AssertEqual(t, 4, len(lines))
	testza.AssertTrue(t, strings.Contains(lines[0], "00:00:50"))
	testza.AssertFalse(t, strings.Contains(lines[0], bestMarker))
	testza.AssertTrue(t, strings.Contains(lines[1], bestMarker))
	testza.AssertTrue(t, strings.Contains(lines[2], worstMarker))
	testza.AssertTrue(t, strings.Contains(lines[2], "00:01:50"))
	testza.AssertTrue(t, strings.Contains(lines[3], "00:01:50"))
}

func TestJSON(t *testing.T) {
	decoded := decode(t, testState(500, 200, 800))
	testza.AssertEqual(t, float64(1500), decoded.ElapsedMs)
	testza.AssertFalse(t, decoded.Running)
	testza.AssertEqual(t, 3, len(decoded.Laps))
	testza.AssertEqual(t, float64(700), decoded.Laps[1].AbsoluteMs)
	testza.AssertEqual(t, float64(200), decoded.Laps[1].SplitMs)
	testza.AssertEqual(t, "2024-03-01T09:30:00Z", decoded.Laps[2].RecordedAt)
	testza.AssertEqual(t, float64(2), *decoded.Best)
	testza.AssertEqual(t, float64(3), *decoded.Worst)
}

func TestJSONHidesWorstForTwoLaps(t *testing.T) {
	decoded := decode(t, testState(500, 200))
	testza.AssertEqual(t, float64(2), *decoded.Best)
	testza.AssertTrue(t, decoded.Worst == nil)
}

func TestJSONWithoutLaps(t *testing.T) {
	decoded := decode(t, stopwatch.State{Elapsed: time.Second, Running: true})
	testza.AssertTrue(t, decoded.Running)
	testza.AssertEqual(t, 0, len(decoded.Laps))
	testza.AssertTrue(t, decoded.Best == nil)
}

func TestWriteNone(t *testing.T) {
	var buf bytes.Buffer
	testza.AssertNoError(t, Write(&buf, testState(100), config.SummaryNone))
	testza.AssertEqual(t, "", buf.String())
}

func TestWriteFormats(t *testing.T) {
	var text bytes.Buffer
	testza.AssertNoError(t, Write(&text, testState(100), config.SummaryText))
	testza.AssertTrue(t, strings.Contains(text.String(), "Total"))

	var js bytes.Buffer
	testza.AssertNoError(t, Write(&js, testState(100), config.SummaryJSON))
	testza.AssertTrue(t, json.Valid(js.Bytes()))
}
