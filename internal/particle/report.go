package particle

import (
	"image"
	"math"
)

// Report holds the measurements of one particle.
//
// Coordinates are in the pixel space of the analysed image, origin top-left.
type Report struct {
	// Index is the particle number within its Result (0-based).
	Index int `json:"index"`

	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`

	// CenterX and CenterY are the center of mass of the particle's pixels.
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`

	// Area is the particle area in pixels.
	Area float64 `json:"area"`

	// Perimeter is the length of the particle boundary in pixel edges.
	Perimeter float64 `json:"perimeter"`

	// RectLong and RectShort are the sides of the equivalent rectangle.
	RectLong  float64 `json:"rect_long"`
	RectShort float64 `json:"rect_short"`

	label int32
}

// BoundingRect returns the particle's bounding rectangle.
func (r Report) BoundingRect() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height)
}

// CenterOfMass returns the mean pixel position of the particle.
func (r Report) CenterOfMass() (x, y float64) {
	return r.CenterX, r.CenterY
}

// ParticleArea returns the particle area in pixels.
func (r Report) ParticleArea() float64 {
	return r.Area
}

// EquivalentRect returns the long and short sides of the equivalent rectangle.
func (r Report) EquivalentRect() (long, short float64) {
	return r.RectLong, r.RectShort
}

// EquivalentRect solves x*y = area and 2x+2y = perimeter for the rectangle
// sides, returning the longer side first.
//
// When no real rectangle matches (the particle is "rounder" than a square of
// the same perimeter) both sides collapse to perimeter/4.
func EquivalentRect(area, perimeter float64) (long, short float64) {
	if area <= 0 || perimeter <= 0 {
		return 0, 0
	}
	q := perimeter / 4
	d := q*q - area
	if d < 0 {
		d = 0
	}
	r := math.Sqrt(d)
	return q + r, q - r
}
