package vision

import (
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the results of a run for the operator. It is computed
// after the fact and never feeds back into frame processing.
type Summary struct {
	Frames       int     `json:"frames"`
	WithTarget   int     `json:"with_target"`
	Hot          int     `json:"hot"`
	MeanDistance float64 `json:"mean_distance_ft"`
	StdDistance  float64 `json:"std_distance_ft"`
}

// Summarize counts targeted and hot frames and the spread of the distance
// estimates over frames that found a target.
func Summarize(results []*FrameResult) Summary {
	var s Summary
	var distances []float64
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Frames++
		if r.Target == nil {
			continue
		}
		s.WithTarget++
		if r.Hot {
			s.Hot++
		}
		distances = append(distances, r.Distance)
	}

	switch len(distances) {
	case 0:
	case 1:
		s.MeanDistance = distances[0]
	default:
		s.MeanDistance, s.StdDistance = stat.MeanStdDev(distances, nil)
	}
	return s
}
