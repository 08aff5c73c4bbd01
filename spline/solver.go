package spline

// solveTridiag solves the tridiagonal system
//
//	| diag0 sup0  ..          |   | out0 |   | rhs0 |
//	| sub1  diag1 sup1 ..     |   | out1 |   | rhs1 |
//	| ..                      | * | ..   | = | ..   |
//	| ..          subN  diagN |   | outN |   | rhsN |
//
// in place into out. The spline systems handed to this solver are symmetric
// positive definite, so elimination without pivoting is stable.
//
// Complexity: O(n).
func solveTridiag(sub, diag, sup, rhs, out []float64) {
	n := len(diag)
	tmp := make([]float64, n)

	beta := diag[0]
	out[0] = rhs[0] / beta
	for i := 1; i < n; i++ {
		tmp[i] = sup[i-1] / beta
		beta = diag[i] - sub[i]*tmp[i]
		out[i] = (rhs[i] - sub[i]*out[i-1]) / beta
	}
	for i := n - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
}

// solvePenta solves the symmetric pentadiagonal system A·out = rhs, where
// d0 holds the main diagonal, d1 the first sub/superdiagonal (len n-1) and
// d2 the second (len n-2). It factors A = L·D·Lᵀ with a unit lower
// triangular L of bandwidth two; no pivoting, which is stable for the
// positive definite smoothing-spline systems built by Fit.
//
// Complexity: O(n).
func solvePenta(d0, d1, d2, rhs, out []float64) {
	n := len(d0)
	dd := make([]float64, n) // D, the factored diagonal
	g := make([]float64, n)  // first subdiagonal of L
	e := make([]float64, n)  // second subdiagonal of L

	dd[0] = d0[0]
	if n > 1 {
		g[0] = d1[0] / dd[0]
	}
	if n > 2 {
		e[0] = d2[0] / dd[0]
	}
	if n > 1 {
		dd[1] = d0[1] - dd[0]*g[0]*g[0]
		if n > 2 {
			g[1] = (d1[1] - dd[0]*g[0]*e[0]) / dd[1]
		}
		if n > 3 {
			e[1] = d2[1] / dd[1]
		}
	}
	for i := 2; i < n; i++ {
		dd[i] = d0[i] - dd[i-1]*g[i-1]*g[i-1] - dd[i-2]*e[i-2]*e[i-2]
		if i < n-1 {
			g[i] = (d1[i] - dd[i-1]*g[i-1]*e[i-1]) / dd[i]
		}
		if i < n-2 {
			e[i] = d2[i] / dd[i]
		}
	}

	// Forward substitution L·z = rhs, then scale by D.
	out[0] = rhs[0]
	if n > 1 {
		out[1] = rhs[1] - g[0]*out[0]
	}
	for i := 2; i < n; i++ {
		out[i] = rhs[i] - g[i-1]*out[i-1] - e[i-2]*out[i-2]
	}
	for i := 0; i < n; i++ {
		out[i] /= dd[i]
	}

	// Back substitution Lᵀ·out = z.
	if n > 1 {
		out[n-2] -= g[n-2] * out[n-1]
	}
	for i := n - 3; i >= 0; i-- {
		out[i] -= g[i]*out[i+1] + e[i]*out[i+2]
	}
}
