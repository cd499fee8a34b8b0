package particle

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/stat"
)

// Labels is a per-pixel particle map. IDs holds one entry per pixel in
// row-major order; 0 is background and particle n is stored as n+1.
type Labels struct {
	Rect image.Rectangle
	IDs  []int32
}

func newLabels(r image.Rectangle) *Labels {
	return &Labels{Rect: r, IDs: make([]int32, r.Dx()*r.Dy())}
}

// renumber rewrites the labels so that particles are numbered in the
// row-major order of their first pixel, the order the flood fill discovers
// them in. It returns the number of particles.
func (l *Labels) renumber() int {
	remap := make(map[int32]int32)
	for i, id := range l.IDs {
		if id == 0 {
			continue
		}
		n, ok := remap[id]
		if !ok {
			n = int32(len(remap) + 1)
			remap[id] = n
		}
		l.IDs[i] = n
	}
	return len(remap)
}

// at returns the label at image-relative (x, y), or 0 outside the map.
func (l *Labels) at(x, y int) int32 {
	w, h := l.Rect.Dx(), l.Rect.Dy()
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0
	}
	return l.IDs[y*w+x]
}

// Result is the outcome of analysing one binary image.
type Result struct {
	Reports []Report
	labels  *Labels
}

// Len returns the number of particles.
func (r *Result) Len() int {
	return len(r.Reports)
}

// Filter returns a new Result holding only the particles the criteria keep.
// Surviving particles are renumbered from zero in their original order.
func (r *Result) Filter(c Criteria) *Result {
	remap := make(map[int32]int32, len(r.Reports))
	kept := make([]Report, 0, len(r.Reports))
	for _, rep := range r.Reports {
		if !c.Keep(rep) {
			continue
		}
		newLabel := int32(len(kept) + 1)
		remap[rep.label] = newLabel
		rep.label = newLabel
		rep.Index = len(kept)
		kept = append(kept, rep)
	}

	var labels *Labels
	if r.labels != nil {
		labels = newLabels(r.labels.Rect)
		for i, id := range r.labels.IDs {
			if id != 0 {
				labels.IDs[i] = remap[id]
			}
		}
	}
	return &Result{Reports: kept, labels: labels}
}

// Image renders the particles as a binary image (255 foreground, 0 background).
func (r *Result) Image() *image.Gray {
	if r.labels == nil {
		return image.NewGray(image.Rect(0, 0, 0, 0))
	}
	rect := r.labels.Rect
	img := image.NewGray(rect)
	w := rect.Dx()
	for i, id := range r.labels.IDs {
		if id != 0 {
			img.SetGray(rect.Min.X+i%w, rect.Min.Y+i/w, color.Gray{Y: 255})
		}
	}
	return img
}

// measure builds one Report per label in a single pass over the map.
func measure(l *Labels, count int) *Result {
	type acc struct {
		minX, minY, maxX, maxY int
		xs, ys                 []float64
		edges                  int
	}
	accs := make([]acc, count)
	for i := range accs {
		accs[i].minX, accs[i].minY = 1<<31-1, 1<<31-1
		accs[i].maxX, accs[i].maxY = -1, -1
	}

	w, h := l.Rect.Dx(), l.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id := l.IDs[y*w+x]
			if id == 0 {
				continue
			}
			a := &accs[id-1]
			if x < a.minX {
				a.minX = x
			}
			if x > a.maxX {
				a.maxX = x
			}
			if y < a.minY {
				a.minY = y
			}
			if y > a.maxY {
				a.maxY = y
			}
			a.xs = append(a.xs, float64(x))
			a.ys = append(a.ys, float64(y))

			// Crack perimeter: every 4-neighbour outside the particle is one edge.
			for _, n := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				if l.at(x+n[0], y+n[1]) != id {
					a.edges++
				}
			}
		}
	}

	ox, oy := l.Rect.Min.X, l.Rect.Min.Y
	reports := make([]Report, 0, count)
	for i, a := range accs {
		if len(a.xs) == 0 {
			continue
		}
		area := float64(len(a.xs))
		perimeter := float64(a.edges)
		long, short := EquivalentRect(area, perimeter)
		reports = append(reports, Report{
			Index:     len(reports),
			Left:      a.minX + ox,
			Top:       a.minY + oy,
			Width:     a.maxX - a.minX + 1,
			Height:    a.maxY - a.minY + 1,
			CenterX:   stat.Mean(a.xs, nil) + float64(ox),
			CenterY:   stat.Mean(a.ys, nil) + float64(oy),
			Area:      area,
			Perimeter: perimeter,
			RectLong:  long,
			RectShort: short,
			label:     int32(i + 1),
		})
	}
	return &Result{Reports: reports, labels: l}
}
