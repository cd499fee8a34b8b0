package particle

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteria_Keep(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		report   Report
		want     bool
	}{
		{"inside area range", AreaRange(150, 65535), Report{Area: 200}, true},
		{"on lower bound", AreaRange(150, 65535), Report{Area: 150}, true},
		{"below area range", AreaRange(150, 65535), Report{Area: 149}, false},
		{"above area range", AreaRange(150, 65535), Report{Area: 70000}, false},
		{"exclude inside", Criteria{{Measurement: MeasureWidth, Lower: 0, Upper: 5, Exclude: true}}, Report{Width: 3}, false},
		{"exclude outside", Criteria{{Measurement: MeasureWidth, Lower: 0, Upper: 5, Exclude: true}}, Report{Width: 9}, true},
		{"height", Criteria{{Measurement: MeasureHeight, Lower: 10, Upper: 20}}, Report{Height: 15}, true},
		{"no criteria", nil, Report{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Keep(tt.report))
		})
	}
}

func TestCriteria_Validate(t *testing.T) {
	assert.NoError(t, AreaRange(150, 65535).Validate())
	assert.Error(t, AreaRange(10, 5).Validate())
	assert.Error(t, Criteria{{Measurement: "perimeter"}}.Validate())
}

func TestResult_Filter(t *testing.T) {
	img := createBinaryImage(100, 100)
	fillRect(img, image.Rect(0, 0, 2, 2))     // area 4, dropped
	fillRect(img, image.Rect(10, 10, 30, 30)) // area 400
	fillRect(img, image.Rect(50, 0, 52, 2))   // area 4, dropped
	fillRect(img, image.Rect(60, 60, 80, 70)) // area 200

	res, err := NewLabeler().Analyze(img)
	require.NoError(t, err)
	require.Equal(t, 4, res.Len())

	filtered := res.Filter(AreaRange(150, 65535))
	require.Equal(t, 2, filtered.Len())

	got := []int{filtered.Reports[0].Index, filtered.Reports[1].Index}
	if diff := cmp.Diff([]int{0, 1}, got); diff != "" {
		t.Errorf("renumbered indexes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 400.0, filtered.Reports[0].Area)
	assert.Equal(t, 200.0, filtered.Reports[1].Area)

	// The rendered image only contains the surviving particles.
	out := filtered.Image()
	assert.Equal(t, uint8(0), out.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), out.GrayAt(15, 15).Y)
	assert.Equal(t, uint8(255), out.GrayAt(70, 65).Y)

	again, err := NewLabeler().Analyze(out)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Len())
}
