package vision

import (
	"image"
	"math"
)

// IdealVerticalRatio is the width / height of the 4"x32" vertical strip.
const IdealVerticalRatio = 4.0 / 32

// IdealHorizontalRatio is the width / height of the 23.5"x4" horizontal strip.
const IdealHorizontalRatio = 23.5 / 4

// Particle is the geometry the scorer needs from a detected blob.
type Particle interface {
	BoundingRect() image.Rectangle
	CenterOfMass() (x, y float64)
	ParticleArea() float64
	// EquivalentRect returns the sides of the rectangle with the particle's
	// area and perimeter, long side first.
	EquivalentRect() (long, short float64)
}

// Limits are the score thresholds used for classification and the hot verdict.
type Limits struct {
	Rectangularity float64 `json:"rectangularity"`
	AspectRatio    float64 `json:"aspect_ratio"`
	TapeWidth      float64 `json:"tape_width"`
	VerticalScore  float64 `json:"vertical_score"`
	LRScore        float64 `json:"lr_score"`
}

// DefaultLimits returns the thresholds tuned for competition lighting.
func DefaultLimits() Limits {
	return Limits{
		Rectangularity: 40,
		AspectRatio:    55,
		TapeWidth:      50,
		VerticalScore:  50,
		LRScore:        50,
	}
}

// Scores holds the shape scores of a single particle.
type Scores struct {
	Rectangularity        float64 `json:"rectangularity"`
	AspectRatioVertical   float64 `json:"aspect_ratio_vertical"`
	AspectRatioHorizontal float64 `json:"aspect_ratio_horizontal"`
}

// Classification is the tape strip a particle was matched to.
type Classification string

const (
	// ClassHorizontal is a particle shaped like the horizontal strip.
	ClassHorizontal Classification = "horizontal"
	// ClassVertical is a particle shaped like the vertical strip.
	ClassVertical Classification = "vertical"
	// ClassNone is a particle that is neither strip.
	ClassNone Classification = "none"
)

// RatioToScore maps a ratio whose ideal value is 1 onto [0,100].
//
// The function is piecewise linear through (0,0), (1,100) and (2,0) and is 0
// everywhere outside (0,2), including NaN and infinite inputs.
func RatioToScore(ratio float64) float64 {
	if math.IsNaN(ratio) {
		return 0
	}
	return math.Max(0, math.Min(100*(1-math.Abs(1-ratio)), 100))
}

// Rectangularity scores how completely the particle fills its bounding box:
// 100 * area / bounding area. An empty bounding box scores 0.
func Rectangularity(p Particle) float64 {
	b := p.BoundingRect()
	boxArea := float64(b.Dx() * b.Dy())
	if boxArea == 0 {
		return 0
	}
	return math.Max(0, math.Min(100*p.ParticleArea()/boxArea, 100))
}

// AspectRatioScore compares the particle's equivalent rectangle to the ideal
// aspect ratio of the vertical (vertical=true) or horizontal strip.
//
// The ratio comes from the equivalent rectangle sides. The bounding box only
// decides the orientation: wider-than-tall particles use long/short, the rest
// short/long.
func AspectRatioScore(p Particle, vertical bool) float64 {
	long, short := p.EquivalentRect()
	if long <= 0 || short <= 0 {
		return 0
	}

	ideal := IdealHorizontalRatio
	if vertical {
		ideal = IdealVerticalRatio
	}

	b := p.BoundingRect()
	ratio := short / long
	if b.Dx() > b.Dy() {
		ratio = long / short
	}
	return RatioToScore(ratio / ideal)
}

// ScoreParticle computes all shape scores of p.
func ScoreParticle(p Particle) Scores {
	return Scores{
		Rectangularity:        Rectangularity(p),
		AspectRatioVertical:   AspectRatioScore(p, true),
		AspectRatioHorizontal: AspectRatioScore(p, false),
	}
}

// Classify reports whether the scores pass the limits for the vertical
// (vertical=true) or horizontal strip. Both comparisons are strict.
func Classify(s Scores, vertical bool, l Limits) bool {
	if s.Rectangularity <= l.Rectangularity {
		return false
	}
	if vertical {
		return s.AspectRatioVertical > l.AspectRatio
	}
	return s.AspectRatioHorizontal > l.AspectRatio
}

// ClassifyParticle checks horizontal before vertical; the first match wins.
func ClassifyParticle(s Scores, l Limits) Classification {
	switch {
	case Classify(s, false, l):
		return ClassHorizontal
	case Classify(s, true, l):
		return ClassVertical
	default:
		return ClassNone
	}
}
