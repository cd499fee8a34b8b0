package particle

import "fmt"

// Measurement names a Report value a Criterion can test.
type Measurement string

const (
	// MeasureArea is the particle area in pixels.
	MeasureArea Measurement = "area"
	// MeasureWidth is the bounding box width.
	MeasureWidth Measurement = "width"
	// MeasureHeight is the bounding box height.
	MeasureHeight Measurement = "height"
)

// Criterion keeps particles whose measurement lies in [Lower, Upper].
// With Exclude set the range is removed instead.
type Criterion struct {
	Measurement Measurement `json:"measurement"`
	Lower       float64     `json:"lower"`
	Upper       float64     `json:"upper"`
	Exclude     bool        `json:"exclude"`
}

// Criteria is a set of criteria that must all keep a particle.
type Criteria []Criterion

// AreaRange returns the criteria that keep particles with area in [min, max].
func AreaRange(min, max float64) Criteria {
	return Criteria{{Measurement: MeasureArea, Lower: min, Upper: max}}
}

// Keep reports whether every criterion keeps r.
func (c Criteria) Keep(r Report) bool {
	for _, cr := range c {
		v := cr.value(r)
		in := v >= cr.Lower && v <= cr.Upper
		if in == cr.Exclude {
			return false
		}
	}
	return true
}

// Validate checks that every criterion names a known measurement and an
// ordered range.
func (c Criteria) Validate() error {
	for i, cr := range c {
		switch cr.Measurement {
		case MeasureArea, MeasureWidth, MeasureHeight:
		default:
			return fmt.Errorf("criterion %d: unknown measurement %q", i, cr.Measurement)
		}
		if cr.Lower > cr.Upper {
			return fmt.Errorf("criterion %d: lower %.1f exceeds upper %.1f", i, cr.Lower, cr.Upper)
		}
	}
	return nil
}

func (cr Criterion) value(r Report) float64 {
	switch cr.Measurement {
	case MeasureWidth:
		return float64(r.Width)
	case MeasureHeight:
		return float64(r.Height)
	default:
		return r.Area
	}
}
