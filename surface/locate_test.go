package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var axis = []float64{0, 1, 2, 3}

// TestOwnsCell_HalfOpenConvention pins cell ownership: interior grid lines
// belong to the cell on their right, the domain maximum to the last cell.
func TestOwnsCell_HalfOpenConvention(t *testing.T) {
	cases := []struct {
		i    int
		v    float64
		owns bool
	}{
		{0, 0, true},
		{0, 0.999, true},
		{0, 1, false}, // right edge of an interior cell is excluded
		{1, 1, true},
		{1, 2, false},
		{2, 2, true},
		{2, 3, true}, // last cell keeps its right edge
		{2, 3.1, false},
		{1, 0.5, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.owns, ownsCell(axis, tc.i, tc.v), "cell %d, v=%g", tc.i, tc.v)
	}
}

// TestAxisStep_AdjacencyWindow checks the ±1 window around the current
// cell and the fallthrough beyond it.
func TestAxisStep_AdjacencyWindow(t *testing.T) {
	cases := []struct {
		cur   int
		v     float64
		delta int
		ok    bool
	}{
		{1, 1.5, 0, true},
		{1, 0.5, -1, true},
		{1, 2.5, 1, true},
		{1, 2.0, 1, true},  // grid line belongs to the right neighbor
		{1, 1.0, 0, true},  // left edge belongs to the current cell
		{1, 3.0, 1, true},  // domain max belongs to the last cell
		{0, 3.0, 0, false}, // two cells away
		{2, 0.5, 0, false},
		{0, 0.0, 0, true},
	}
	for _, tc := range cases {
		delta, ok := axisStep(axis, tc.cur, tc.v)
		assert.Equal(t, tc.ok, ok, "cur=%d v=%g", tc.cur, tc.v)
		if ok {
			assert.Equal(t, tc.delta, delta, "cur=%d v=%g", tc.cur, tc.v)
		}
	}
}

// TestSearchCell_AgreesWithOwnership brute-forces searchCell against
// ownsCell over a dense sweep of the domain.
func TestSearchCell_AgreesWithOwnership(t *testing.T) {
	irregular := []float64{-2, -0.5, 0.1, 1.7, 4}
	for v := -2.0; v <= 4.0; v += 0.01 {
		i := searchCell(irregular, v)
		assert.True(t, ownsCell(irregular, i, v), "v=%g landed in cell %d", v, i)
	}
	// Knots themselves, including both domain ends.
	for _, v := range irregular {
		i := searchCell(irregular, v)
		assert.True(t, ownsCell(irregular, i, v), "knot v=%g landed in cell %d", v, i)
	}
}

// TestRegularCell_AgreesWithSearch compares the arithmetic path against
// binary search on a regular axis, grid lines included.
func TestRegularCell_AgreesWithSearch(t *testing.T) {
	reg := []float64{1, 1.5, 2, 2.5, 3}
	for v := 1.0; v <= 3.0; v += 0.001 {
		want := searchCell(reg, v)
		got := regularCell(reg, 1, 0.5, v)
		assert.Equal(t, want, got, "v=%g", v)
	}
}
