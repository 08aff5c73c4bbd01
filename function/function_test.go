package function_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bicubic/function"
	"github.com/katalvlaran/bicubic/surface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newQuadratic builds the f = x²+y² reference surface with analytic
// derivatives on integer axes 0..3.
func newQuadratic(t *testing.T) *surface.Surface {
	t.Helper()
	axes := []float64{0, 1, 2, 3}
	n := len(axes)
	f := make([][]float64, n)
	fx := make([][]float64, n)
	fy := make([][]float64, n)
	fxy := make([][]float64, n)
	for i := range axes {
		f[i] = make([]float64, n)
		fx[i] = make([]float64, n)
		fy[i] = make([]float64, n)
		fxy[i] = make([]float64, n)
		for j := range axes {
			f[i][j] = axes[i]*axes[i] + axes[j]*axes[j]
			fx[i][j] = 2 * axes[i]
			fy[i][j] = 2 * axes[j]
		}
	}
	s, err := surface.NewWithDerivatives(axes, axes, f, fx, fy, fxy)
	require.NoError(t, err)

	return s
}

// TestSurfaceFunction_Contract pins arity and derivative order.
func TestSurfaceFunction_Contract(t *testing.T) {
	fn := function.NewSurfaceFunction(newQuadratic(t))

	assert.Equal(t, 2, fn.ArgumentCount())
	assert.Equal(t, math.MaxInt32, fn.MaxDerivativeOrder())
	assert.Same(t, fn.Surface(), fn.Surface())
}

// TestSurfaceFunction_ValueAndDerivative checks that evaluation through
// the adapter matches direct surface calls.
func TestSurfaceFunction_ValueAndDerivative(t *testing.T) {
	s := newQuadratic(t)
	fn := function.NewSurfaceFunction(s)
	args := []float64{1.5, 1.5}

	v, err := fn.Value(args)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, v, 1e-12)

	d, err := fn.Derivative([]int{0}, args)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, d, 1e-12)

	want, err := s.DerivativeAt([]int{0, 1}, surface.Point{X: 1.5, Y: 1.5})
	require.NoError(t, err)
	got, err := fn.Derivative([]int{0, 1}, args)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestSurfaceFunction_ArgumentCountErrors rejects wrong arity without
// touching the surface.
func TestSurfaceFunction_ArgumentCountErrors(t *testing.T) {
	s := newQuadratic(t)
	fn := function.NewSurfaceFunction(s)
	s.ResetStats()

	for _, args := range [][]float64{nil, {1}, {1, 2, 3}} {
		_, err := fn.Value(args)
		assert.ErrorIs(t, err, function.ErrArgumentCount, "args %v", args)

		_, err = fn.Derivative([]int{0}, args)
		assert.ErrorIs(t, err, function.ErrArgumentCount, "args %v", args)
	}
	assert.Zero(t, s.Stats().Accesses, "arity failures never reach the surface")
}

// TestSurfaceFunction_ErrorPassthrough forwards surface errors unchanged.
func TestSurfaceFunction_ErrorPassthrough(t *testing.T) {
	fn := function.NewSurfaceFunction(newQuadratic(t))

	_, err := fn.Value([]float64{-10, 0})
	assert.ErrorIs(t, err, surface.ErrOutOfRange)

	_, err = fn.Derivative([]int{5}, []float64{1, 1})
	assert.ErrorIs(t, err, surface.ErrBadDerivComponent)
}

// TestSurfaceFunction_HintWarmsAcrossCalls verifies that the adapter's
// private hint turns repeated calls into cache hits, and that ClearHint
// cools it again.
func TestSurfaceFunction_HintWarmsAcrossCalls(t *testing.T) {
	s := newQuadratic(t)
	fn := function.NewSurfaceFunction(s)
	args := []float64{1.25, 1.25}

	_, err := fn.Value(args)
	require.NoError(t, err)
	_, err = fn.Value(args)
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.Stats().SamePoint)

	fn.ClearHint()
	s.ResetStats()
	_, err = fn.Value(args)
	require.NoError(t, err)
	assert.Equal(t, surface.Stats{Accesses: 1}, s.Stats(), "cleared hint resolves cold")
}
