package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSVRange is an inclusive colour window on the 0-255 scale for hue,
// saturation and value.
type HSVRange struct {
	HueLow  int `json:"hue_low"`
	HueHigh int `json:"hue_high"`
	SatLow  int `json:"sat_low"`
	SatHigh int `json:"sat_high"`
	ValLow  int `json:"val_low"`
	ValHigh int `json:"val_high"`
}

// Contains reports whether an HSV triple (0-255 scale) lies inside the range.
func (r HSVRange) Contains(h, s, v int) bool {
	return h >= r.HueLow && h <= r.HueHigh &&
		s >= r.SatLow && s <= r.SatHigh &&
		v >= r.ValLow && v <= r.ValHigh
}

// Validate checks that every channel is on the 0-255 scale and ordered.
func (r HSVRange) Validate() error {
	channels := []struct {
		name      string
		low, high int
	}{
		{"hue", r.HueLow, r.HueHigh},
		{"saturation", r.SatLow, r.SatHigh},
		{"value", r.ValLow, r.ValHigh},
	}
	for _, c := range channels {
		if c.low < 0 || c.high > 255 {
			return fmt.Errorf("%s range %d-%d outside 0-255", c.name, c.low, c.high)
		}
		if c.low > c.high {
			return fmt.Errorf("%s range %d-%d is inverted", c.name, c.low, c.high)
		}
	}
	return nil
}

// ThresholdHSV converts img to a binary image that is 255 wherever the pixel
// colour lies inside r and 0 elsewhere.
//
// Parameters:
//   - img: Source image in any colour model.
//   - r: Inclusive HSV window on the 0-255 scale.
//
// Returns:
//   - *image.Gray: Binary image with the same bounds as img.
//
// # Conversion
//
// The source is first normalised to RGBA, then each pixel converted to HSV.
// Hue degrees (0-360) are scaled onto 0-255; saturation and value (0-1) are
// scaled onto 0-255. Alpha is ignored.
func ThresholdHSV(img image.Image, r HSVRange) *image.Gray {
	src := clone.AsRGBA(img)
	bounds := src.Bounds()
	out := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			h, s, v := hsv255(src.RGBAAt(x, y))
			if r.Contains(h, s, v) {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	return out
}

// hsv255 returns the HSV components of c on the 0-255 scale.
func hsv255(c color.RGBA) (h, s, v int) {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	hf, sf, vf := col.Hsv()
	return int(hf*255/360 + 0.5), int(sf*255 + 0.5), int(vf*255 + 0.5)
}
