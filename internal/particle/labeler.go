package particle

import (
	"image"
)

// Analyzer measures the particles of a binary image.
type Analyzer interface {
	Analyze(bin *image.Gray) (*Result, error)
}

// Labeler is the pure Go Analyzer. Any non-zero pixel is foreground.
type Labeler struct{}

// NewLabeler returns a Labeler.
func NewLabeler() *Labeler {
	return &Labeler{}
}

// Analyze labels the connected components of bin and measures each one.
//
// Parameters:
//   - bin: Binary image. Pixels with a non-zero value are foreground.
//
// Returns:
//   - *Result: One Report per particle in row-major discovery order.
//   - error: Currently always nil.
func (l *Labeler) Analyze(bin *image.Gray) (*Result, error) {
	rect := bin.Bounds()
	width, height := rect.Dx(), rect.Dy()
	labels := newLabels(rect)

	var next int32
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if labels.IDs[y*width+x] != 0 || !foreground(bin, rect, x, y) {
				continue
			}
			next++
			floodFill(bin, labels, x, y, next)
		}
	}

	return measure(labels, int(next)), nil
}

func foreground(bin *image.Gray, rect image.Rectangle, x, y int) bool {
	return bin.GrayAt(rect.Min.X+x, rect.Min.Y+y).Y != 0
}

// floodFill marks every foreground pixel 8-connected to (startX, startY).
//
// Uses an explicit stack rather than recursion so large particles cannot
// overflow the goroutine stack.
func floodFill(bin *image.Gray, labels *Labels, startX, startY int, id int32) {
	rect := labels.Rect
	width, height := rect.Dx(), rect.Dy()
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		i := p.Y*width + p.X
		if labels.IDs[i] != 0 || !foreground(bin, rect, p.X, p.Y) {
			continue
		}
		labels.IDs[i] = id

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
}
