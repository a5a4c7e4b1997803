package storage

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a set of session scores.
type Summary struct {
	Sessions int
	Best     int
	Worst    int
	Mean     float64
	StdDev   float64 // Sample standard deviation, 0 for fewer than two sessions
	Frames   int     // Total frames played
}

// Summarize computes score statistics over entries.
func Summarize(entries []ScoreEntry) Summary {
	if len(entries) == 0 {
		return Summary{}
	}

	scores := make([]float64, len(entries))
	var frames int
	for i, e := range entries {
		scores[i] = float64(e.Score)
		frames += e.Frames
	}

	sum := Summary{
		Sessions: len(entries),
		Best:     int(floats.Max(scores)),
		Worst:    int(floats.Min(scores)),
		Frames:   frames,
	}
	if len(scores) < 2 {
		sum.Mean = scores[0]
		return sum
	}
	sum.Mean, sum.StdDev = stat.MeanStdDev(scores, nil)
	return sum
}
