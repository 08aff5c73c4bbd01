package surface

// hermite is the fixed 4×4 basis-change matrix of 1-D cubic Hermite
// interpolation: [1 u u² u³]·hermite yields the four Hermite basis
// functions (value at 0, value at 1, slope at 0, slope at 1). The bicubic
// patch coefficients follow from two applications, one per axis.
var hermite = [4][4]float64{
	{1, 0, 0, 0},
	{0, 0, 1, 0},
	{-3, 3, -2, -1},
	{2, -2, 1, 1},
}

// falling[k][m] = k·(k−1)·…·(k−m+1), the coefficient picked up by uᵏ under
// m-fold differentiation.
var falling = [4][4]float64{
	{1, 0, 0, 0},
	{1, 1, 0, 0},
	{1, 2, 2, 0},
	{1, 3, 6, 6},
}

// loadPatch computes the bicubic coefficients of cell (h.i, h.j) into the
// hint: A = M·Φ·Mᵀ, where M is the Hermite basis-change matrix and Φ packs
// the four corner values of f, fx, fy and fxy with the slopes rescaled to
// normalized local coordinates (fx by Δx, fy by Δy, fxy by Δx·Δy). The
// resulting patch and its first partials agree with the corner data, which
// is what stitches adjacent patches together C¹-continuously.
//
// Closed form, no failure mode: the grid was validated at construction.
//
// Complexity: O(1) — two 4×4 matrix products.
func (s *Surface) loadPatch(h *PatchHint) {
	i, j := h.i, h.j
	hx := s.xs[i+1] - s.xs[i]
	hy := s.ys[j+1] - s.ys[j]
	hxy := hx * hy

	// Φ rows follow the u-basis order (f at u=0, f at u=1, ∂u at u=0,
	// ∂u at u=1); columns follow the same order in v.
	phi := [4][4]float64{
		{s.f[i][j], s.f[i][j+1], s.fy[i][j] * hy, s.fy[i][j+1] * hy},
		{s.f[i+1][j], s.f[i+1][j+1], s.fy[i+1][j] * hy, s.fy[i+1][j+1] * hy},
		{s.fx[i][j] * hx, s.fx[i][j+1] * hx, s.fxy[i][j] * hxy, s.fxy[i][j+1] * hxy},
		{s.fx[i+1][j] * hx, s.fx[i+1][j+1] * hx, s.fxy[i+1][j] * hxy, s.fxy[i+1][j+1] * hxy},
	}

	var tmp [4][4]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += hermite[r][k] * phi[k][c]
			}
			tmp[r][c] = sum
		}
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += tmp[r][k] * hermite[c][k]
			}
			h.coeff[r][c] = sum
		}
	}

	h.populated = true
	h.hasResult = false
}

// evalPatch evaluates the patch polynomial Σ coeff[a][b]·uᵃ·vᵇ by nested
// Horner recurrences. Complexity: O(1).
func evalPatch(coeff *[4][4]float64, u, v float64) float64 {
	var r float64
	for i := 3; i >= 0; i-- {
		var inner float64
		for j := 3; j >= 0; j-- {
			inner = inner*v + coeff[i][j]
		}
		r = r*u + inner
	}

	return r
}

// evalPatchDeriv evaluates ∂^(nx+ny) of the patch polynomial with respect
// to u (nx times) and v (ny times), still in normalized local coordinates;
// the caller applies the 1/Δx and 1/Δy chain-rule factors. Requires
// nx, ny ≤ 3. Complexity: O(1).
func evalPatchDeriv(coeff *[4][4]float64, u, v float64, nx, ny int) float64 {
	var r float64
	for i := 3; i >= nx; i-- {
		var inner float64
		for j := 3; j >= ny; j-- {
			inner = inner*v + falling[j][ny]*coeff[i][j]
		}
		r = r*u + falling[i][nx]*inner
	}

	return r
}
