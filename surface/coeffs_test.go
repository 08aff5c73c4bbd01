package surface

import (
	"testing"

	"github.com/katalvlaran/bicubic/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cornerSurface builds a surface with arbitrary but deterministic corner
// data so every Φ entry is exercised with a distinct value.
func cornerSurface(t *testing.T) *Surface {
	t.Helper()
	x := []float64{0, 0.5, 1.7, 3}
	y := []float64{-1, 0.2, 1.1, 2}
	n := len(x)
	f := make([][]float64, n)
	fx := make([][]float64, n)
	fy := make([][]float64, n)
	fxy := make([][]float64, n)
	for i := 0; i < n; i++ {
		f[i] = make([]float64, n)
		fx[i] = make([]float64, n)
		fy[i] = make([]float64, n)
		fxy[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			f[i][j] = float64(7*i+3*j) + 0.25
			fx[i][j] = float64(i-2*j) + 0.5
			fy[i][j] = float64(3*j-i) - 0.75
			fxy[i][j] = float64(i*j) - 1.5
		}
	}

	g, err := grid.NewWithDerivatives(x, y, f, fx, fy, fxy)
	require.NoError(t, err)
	s, err := FromGrid(g)
	require.NoError(t, err)

	return s
}

// TestLoadPatch_CornerReproduction checks the defining property of the
// Hermite construction: the patch and its first partials reproduce the
// corner data of every cell exactly.
func TestLoadPatch_CornerReproduction(t *testing.T) {
	s := cornerSurface(t)

	for i := 0; i < len(s.xs)-1; i++ {
		for j := 0; j < len(s.ys)-1; j++ {
			h := PatchHint{i: i, j: j}
			s.loadPatch(&h)
			assert.True(t, h.populated)

			hx := s.xs[i+1] - s.xs[i]
			hy := s.ys[j+1] - s.ys[j]
			for du := 0; du <= 1; du++ {
				for dv := 0; dv <= 1; dv++ {
					u, v := float64(du), float64(dv)
					ci, cj := i+du, j+dv

					assert.InDelta(t, s.f[ci][cj],
						evalPatch(&h.coeff, u, v), 1e-10,
						"f corner (%d,%d) of cell (%d,%d)", ci, cj, i, j)
					assert.InDelta(t, s.fx[ci][cj],
						evalPatchDeriv(&h.coeff, u, v, 1, 0)/hx, 1e-10,
						"fx corner (%d,%d) of cell (%d,%d)", ci, cj, i, j)
					assert.InDelta(t, s.fy[ci][cj],
						evalPatchDeriv(&h.coeff, u, v, 0, 1)/hy, 1e-10,
						"fy corner (%d,%d) of cell (%d,%d)", ci, cj, i, j)
					assert.InDelta(t, s.fxy[ci][cj],
						evalPatchDeriv(&h.coeff, u, v, 1, 1)/(hx*hy), 1e-10,
						"fxy corner (%d,%d) of cell (%d,%d)", ci, cj, i, j)
				}
			}
		}
	}
}

// TestEvalPatchDeriv_ZeroOrderMatchesEval pins evalPatchDeriv(0,0) to the
// plain polynomial evaluation.
func TestEvalPatchDeriv_ZeroOrderMatchesEval(t *testing.T) {
	coeff := [4][4]float64{
		{1, -2, 3, -4},
		{0.5, 1.5, -2.5, 3.5},
		{-1, 2, -3, 4},
		{0.25, -0.75, 1.25, -1.75},
	}

	for _, u := range []float64{0, 0.3, 0.78, 1} {
		for _, v := range []float64{0, 0.41, 0.9, 1} {
			assert.InDelta(t, evalPatch(&coeff, u, v),
				evalPatchDeriv(&coeff, u, v, 0, 0), 1e-12,
				"u=%g v=%g", u, v)
		}
	}
}

// TestEvalPatchDeriv_MonomialOrders differentiates the single monomial
// u³·v³ and compares against the closed forms.
func TestEvalPatchDeriv_MonomialOrders(t *testing.T) {
	var coeff [4][4]float64
	coeff[3][3] = 1 // p(u,v) = u³v³

	u, v := 0.5, 0.25
	cases := []struct {
		nx, ny int
		want   float64
	}{
		{1, 0, 3 * u * u * v * v * v},
		{0, 1, 3 * u * u * u * v * v},
		{2, 0, 6 * u * v * v * v},
		{3, 0, 6 * v * v * v},
		{1, 1, 9 * u * u * v * v},
		{3, 3, 36},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, evalPatchDeriv(&coeff, u, v, tc.nx, tc.ny), 1e-12,
			"∂^(%d,%d) u³v³", tc.nx, tc.ny)
	}
}

// TestLoadPatch_ResetsCachedScalar guards the tier-1 invalidation: loading
// new coefficients must drop any previously cached result.
func TestLoadPatch_ResetsCachedScalar(t *testing.T) {
	s := cornerSurface(t)

	h := PatchHint{i: 0, j: 0}
	s.loadPatch(&h)
	h.hasResult = true
	h.lastResult = 42

	h.i, h.j = 1, 1
	s.loadPatch(&h)
	assert.False(t, h.hasResult, "stale scalar must not survive a patch reload")
}
