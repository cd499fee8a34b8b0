package vision

import (
	"errors"
	"fmt"
	"math"
)

// TargetHeightInches is the physical height of the vertical strip.
const TargetHeightInches = 32

// ErrNoApparentHeight is returned when a particle has no measurable height.
var ErrNoApparentHeight = errors.New("particle has no apparent height")

// ErrInvalidGeometry is returned when the camera geometry cannot range a target.
var ErrInvalidGeometry = errors.New("invalid camera geometry")

// CameraGeometry describes the camera the frames come from.
type CameraGeometry struct {
	// YResolution is the vertical image resolution in pixels.
	YResolution int `json:"y_resolution"`
	// ViewAngle is the field of view in degrees used for ranging.
	ViewAngle float64 `json:"view_angle"`
}

// DefaultGeometry returns the geometry of the robot's 640x480 camera.
func DefaultGeometry() CameraGeometry {
	return CameraGeometry{YResolution: 480, ViewAngle: 49}
}

// Validate checks that g describes a real camera: a positive vertical
// resolution and a view angle strictly between 0 and 180 degrees.
func (g CameraGeometry) Validate() error {
	if g.YResolution <= 0 {
		return fmt.Errorf("%w: y resolution must be positive, got %d", ErrInvalidGeometry, g.YResolution)
	}
	if !(g.ViewAngle > 0 && g.ViewAngle < 180) {
		return fmt.Errorf("%w: view angle must be between 0 and 180, got %g", ErrInvalidGeometry, g.ViewAngle)
	}
	return nil
}

// ComputeDistance estimates the distance in feet to a vertical strip with a
// pinhole camera model.
//
// The apparent height is the smaller of the equivalent rectangle long side and
// the bounding box height.
func ComputeDistance(p Particle, g CameraGeometry) (float64, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	long, _ := p.EquivalentRect()
	height := math.Min(float64(p.BoundingRect().Dy()), long)
	if height <= 0 {
		return 0, ErrNoApparentHeight
	}
	halfView := math.Tan(g.ViewAngle * math.Pi / (180 * 2))
	return float64(g.YResolution) * TargetHeightInches / (height * 12 * 2 * halfView), nil
}
