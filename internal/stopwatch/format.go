package stopwatch

import (
	"fmt"
	"time"
)

// FormatDuration renders d as MM:SS:CC where CC is hundredths of a second.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	totalSeconds := ms / 1000
	return fmt.Sprintf("%02d:%02d:%02d", totalSeconds/60, totalSeconds%60, (ms%1000)/10)
}

func FormatSplit(d time.Duration) string {
	return "+" + FormatDuration(d)
}

func FormatClock(t time.Time) string {
	return t.Format("15:04")
}
