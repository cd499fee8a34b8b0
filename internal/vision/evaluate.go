package vision

import (
	"fmt"

	"github.com/team1160/assistant-vision/internal/particle"
)

// ParticleResult is the scoring outcome of one particle.
type ParticleResult struct {
	Report particle.Report `json:"report"`
	Scores Scores          `json:"scores"`
	Class  Classification  `json:"class"`
}

// Evaluation is the scoring outcome of one frame's particles.
type Evaluation struct {
	Particles []ParticleResult `json:"particles"`

	// Target is nil when no particle classified as a vertical strip.
	Target *TargetReport `json:"target,omitempty"`

	// Distance is the estimated range in feet to the target's vertical strip.
	Distance float64 `json:"distance_ft,omitempty"`
	Hot      bool    `json:"hot"`
}

// Scorer holds the parameters of the scoring stage.
type Scorer struct {
	Limits   Limits
	Geometry CameraGeometry
	// MaxParticles caps how many particles are scored per frame; 0 scores all.
	MaxParticles int
}

// NewScorer returns a Scorer with the default limits and camera geometry.
func NewScorer() Scorer {
	return Scorer{
		Limits:       DefaultLimits(),
		Geometry:     DefaultGeometry(),
		MaxParticles: 8,
	}
}

// Evaluate scores and classifies the particles of one frame, pairs the
// candidates and, when a vertical strip was found, decides hot or not and
// estimates its distance.
//
// Returns an error wrapping ErrMeasurement if the distance cannot be measured.
func (s Scorer) Evaluate(reports []particle.Report) (*Evaluation, error) {
	n := len(reports)
	if s.MaxParticles > 0 && n > s.MaxParticles {
		n = s.MaxParticles
	}

	ev := &Evaluation{Particles: make([]ParticleResult, 0, n)}
	var vertical, horizontal []Candidate
	for _, r := range reports[:n] {
		scores := ScoreParticle(r)
		class := ClassifyParticle(scores, s.Limits)
		switch class {
		case ClassHorizontal:
			horizontal = append(horizontal, Candidate{Index: r.Index, Particle: r})
		case ClassVertical:
			vertical = append(vertical, Candidate{Index: r.Index, Particle: r})
		}
		ev.Particles = append(ev.Particles, ParticleResult{Report: r, Scores: scores, Class: class})
	}

	target, ok := PairAndScore(vertical, horizontal)
	if !ok {
		return ev, nil
	}
	target.Hot = HotOrNot(target, s.Limits)
	ev.Target = &target
	ev.Hot = target.Hot

	for _, c := range vertical {
		if c.Index != target.VerticalIndex {
			continue
		}
		d, err := ComputeDistance(c.Particle, s.Geometry)
		if err != nil {
			return nil, fmt.Errorf("%w: particle %d: %w", ErrMeasurement, c.Index, err)
		}
		ev.Distance = d
		break
	}
	return ev, nil
}
