package vision

import "math"

// Candidate is a particle classified as one of the tape strips, together with
// its particle number in the frame.
type Candidate struct {
	Index    int
	Particle Particle
}

// TargetReport describes the best vertical/horizontal pairing of a frame.
type TargetReport struct {
	VerticalIndex int `json:"vertical_index"`

	// HorizontalIndex is -1 when no horizontal strip was paired.
	HorizontalIndex int     `json:"horizontal_index"`
	Hot             bool    `json:"hot"`
	TotalScore      float64 `json:"total_score"`
	LeftScore       float64 `json:"left_score"`
	RightScore      float64 `json:"right_score"`
	TapeWidthScore  float64 `json:"tape_width_score"`
	VerticalScore   float64 `json:"vertical_score"`
}

// PairScore holds the sub-scores of one vertical/horizontal pair.
type PairScore struct {
	Left      float64
	Right     float64
	TapeWidth float64
	Vertical  float64
	Total     float64
}

// ScorePair scores how well h sits where the horizontal strip should be
// relative to the vertical strip v.
//
//   - Left: h is one strip-width left of v
//   - Right: h is one strip-width right of v
//   - TapeWidth: both strips have the same tape width
//   - Vertical: h is level with the top of v
//
// Total is max(Left, Right) + TapeWidth + Vertical.
func ScorePair(v, h Particle) PairScore {
	horizWidth, horizHeight := h.EquivalentRect()
	if horizWidth <= 0 || horizHeight <= 0 {
		return PairScore{}
	}
	_, vertWidth := v.EquivalentRect()
	vb := v.BoundingRect()
	hx, hy := h.CenterOfMass()

	left := float64(vb.Min.X)
	s := PairScore{
		Left:      RatioToScore(1.2 * (left - hx) / horizWidth),
		Right:     RatioToScore(1.2 * (hx - left - float64(vb.Dx())) / horizWidth),
		TapeWidth: RatioToScore(vertWidth / horizHeight),
		Vertical:  RatioToScore(1 - (float64(vb.Min.Y)-hy)/(4*horizHeight)),
	}
	s.Total = math.Max(s.Left, s.Right) + s.TapeWidth + s.Vertical
	return s
}

// PairAndScore scores every vertical x horizontal pair and returns the best.
//
// The report starts on the first vertical candidate with zero scores and no
// horizontal strip, so a frame without horizontal candidates still names a
// vertical strip for the distance estimate. A pair replaces the current best
// only with a strictly higher total; ties keep the pair met first, iterating
// vertical-major in candidate order.
//
// ok is false when there are no vertical candidates. Hot is left false; see
// HotOrNot.
func PairAndScore(vertical, horizontal []Candidate) (report TargetReport, ok bool) {
	if len(vertical) == 0 {
		return TargetReport{VerticalIndex: -1, HorizontalIndex: -1}, false
	}

	report = TargetReport{VerticalIndex: vertical[0].Index, HorizontalIndex: -1}
	for _, v := range vertical {
		for _, h := range horizontal {
			s := ScorePair(v.Particle, h.Particle)
			if s.Total > report.TotalScore {
				report.VerticalIndex = v.Index
				report.HorizontalIndex = h.Index
				report.TotalScore = s.Total
				report.LeftScore = s.Left
				report.RightScore = s.Right
				report.TapeWidthScore = s.TapeWidth
				report.VerticalScore = s.Vertical
			}
		}
	}
	return report, true
}

// HotOrNot reports whether the target is lit: tape width and vertical scores
// at or above their limits, and the left or right score above its limit.
func HotOrNot(t TargetReport, l Limits) bool {
	return t.TapeWidthScore >= l.TapeWidth &&
		t.VerticalScore >= l.VerticalScore &&
		(t.LeftScore > l.LRScore || t.RightScore > l.LRScore)
}
