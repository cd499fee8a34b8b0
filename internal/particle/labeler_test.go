package particle

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createBinaryImage returns a black binary image of the given size.
func createBinaryImage(width, height int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, width, height))
}

// fillRect sets the pixels of r to foreground.
func fillRect(img *image.Gray, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
}

func TestLabeler_EmptyImage(t *testing.T) {
	res, err := NewLabeler().Analyze(createBinaryImage(50, 50))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Len())
}

func TestLabeler_SolidRectangle(t *testing.T) {
	img := createBinaryImage(100, 100)
	fillRect(img, image.Rect(10, 20, 30, 60)) // 20 wide, 40 tall

	res, err := NewLabeler().Analyze(img)
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())

	r := res.Reports[0]
	assert.Equal(t, 0, r.Index)
	assert.Equal(t, 10, r.Left)
	assert.Equal(t, 20, r.Top)
	assert.Equal(t, 20, r.Width)
	assert.Equal(t, 40, r.Height)
	assert.Equal(t, 800.0, r.Area)
	assert.Equal(t, 120.0, r.Perimeter)
	assert.InDelta(t, 19.5, r.CenterX, 1e-9)
	assert.InDelta(t, 39.5, r.CenterY, 1e-9)
	assert.InDelta(t, 40.0, r.RectLong, 1e-9)
	assert.InDelta(t, 20.0, r.RectShort, 1e-9)
	assert.Equal(t, image.Rect(10, 20, 30, 60), r.BoundingRect())
}

func TestLabeler_DiscoveryOrder(t *testing.T) {
	img := createBinaryImage(100, 100)
	fillRect(img, image.Rect(60, 50, 70, 60)) // lower
	fillRect(img, image.Rect(5, 5, 15, 10))   // upper-left
	fillRect(img, image.Rect(80, 5, 90, 10))  // upper-right

	res, err := NewLabeler().Analyze(img)
	require.NoError(t, err)
	require.Equal(t, 3, res.Len())

	assert.Equal(t, 5, res.Reports[0].Left)
	assert.Equal(t, 80, res.Reports[1].Left)
	assert.Equal(t, 60, res.Reports[2].Left)
	for i, r := range res.Reports {
		assert.Equal(t, i, r.Index)
	}
}

func TestLabels_RenumberMatchesLabeler(t *testing.T) {
	img := createBinaryImage(20, 4)
	fillRect(img, image.Rect(10, 0, 14, 3)) // first pixel at (10,0)
	fillRect(img, image.Rect(0, 1, 4, 4))   // first pixel at (0,1)

	// Label the way a block-scanning labeller can: the lower-left particle
	// first, with non-contiguous ids.
	labels := newLabels(img.Bounds())
	for y := 0; y < 4; y++ {
		for x := 0; x < 20; x++ {
			switch {
			case image.Pt(x, y).In(image.Rect(0, 1, 4, 4)):
				labels.IDs[y*20+x] = 1
			case image.Pt(x, y).In(image.Rect(10, 0, 14, 3)):
				labels.IDs[y*20+x] = 7
			}
		}
	}

	n := labels.renumber()
	require.Equal(t, 2, n)
	assert.Equal(t, int32(1), labels.at(10, 0))
	assert.Equal(t, int32(2), labels.at(0, 1))
	assert.Equal(t, int32(0), labels.at(5, 0))

	got := measure(labels, n)
	want, err := NewLabeler().Analyze(img)
	require.NoError(t, err)
	assert.Equal(t, want.Reports, got.Reports)
}

func TestLabeler_DiagonalConnectivity(t *testing.T) {
	img := createBinaryImage(10, 10)
	img.SetGray(2, 2, color.Gray{Y: 255})
	img.SetGray(3, 3, color.Gray{Y: 255})
	img.SetGray(4, 4, color.Gray{Y: 255})

	res, err := NewLabeler().Analyze(img)
	require.NoError(t, err)
	require.Equal(t, 1, res.Len(), "diagonal pixels should form one particle")
	assert.Equal(t, 3.0, res.Reports[0].Area)
}

func TestLabeler_OffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(100, 200, 150, 250))
	fillRect(img, image.Rect(110, 210, 120, 215))

	res, err := NewLabeler().Analyze(img)
	require.NoError(t, err)
	require.Equal(t, 1, res.Len())
	assert.Equal(t, 110, res.Reports[0].Left)
	assert.Equal(t, 210, res.Reports[0].Top)
	assert.InDelta(t, 114.5, res.Reports[0].CenterX, 1e-9)
}

func TestEquivalentRect(t *testing.T) {
	tests := []struct {
		name      string
		area      float64
		perimeter float64
		wantLong  float64
		wantShort float64
	}{
		{"rectangle 4x32", 128, 72, 32, 4},
		{"square", 100, 40, 10, 10},
		{"rounder than square", 100, 30, 7.5, 7.5},
		{"zero area", 0, 10, 0, 0},
		{"zero perimeter", 10, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			long, short := EquivalentRect(tt.area, tt.perimeter)
			assert.InDelta(t, tt.wantLong, long, 1e-9)
			assert.InDelta(t, tt.wantShort, short, 1e-9)
		})
	}
}
