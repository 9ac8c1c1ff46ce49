package stopwatch

// Highlights marks the fastest and slowest split among laps. The first lap is never a candidate
// since it has no previous checkpoint to race against.
type Highlights struct {
	Best      int
	Worst     int
	ShowBest  bool
	ShowWorst bool
}

// FindHighlights returns the 0-based positions of the best and worst splits, or -1 when there
// are fewer than two laps. Ties go to the earliest lap. Worst is only shown once there are more
// than two laps, otherwise it would always be the lap opposite the best one.
func FindHighlights(laps []Lap) Highlights {
	highlights := Highlights{Best: -1, Worst: -1}
	if len(laps) <= 1 {
		return highlights
	}

	highlights.Best = 1
	highlights.Worst = 1
	for i := 2; i < len(laps); i++ {
		if laps[i].Split < laps[highlights.Best].Split {
			highlights.Best = i
		}
		if laps[i].Split > laps[highlights.Worst].Split {
			highlights.Worst = i
		}
	}
	highlights.ShowBest = true
	highlights.ShowWorst = len(laps) > 2

	return highlights
}

func (h Highlights) IsBest(position int) bool {
	return h.ShowBest && position == h.Best
}

// IsWorst never reports a lap that is also the best one.
func (h Highlights) IsWorst(position int) bool {
	return h.ShowWorst && position == h.Worst && position != h.Best
}
