package spline

import (
	"fmt"
	"math"
	"sort"
)

// MinPoints is the minimum number of samples accepted by Fit. Four points
// keep the spline consistent with the 4x4 minimum of the surface package.
const MinPoints = 4

// Spline is an immutable fitted cubic spline. On each knot interval
// [xs[i], xs[i+1]] it is the cubic
//
//	s(t) = a[i] + b[i]·t + (c[i]/2)·t² + d[i]·t³,  t = x − xs[i],
//
// where a holds the fitted knot values and c the second derivatives at the
// knots. The natural boundary condition pins c[0] = c[n-1] = 0.
type Spline struct {
	xs []float64 // knots, strictly increasing
	a  []float64 // fitted values at knots (== input ys when smoothness is 0)
	c  []float64 // second derivatives at knots, zero at both ends
	b  []float64 // per-interval first-derivative coefficients, len n-1
	d  []float64 // per-interval cubic coefficients, len n-1

	// Mean knot spacing, used to guess the bracketing interval before
	// falling back to binary search.
	dx float64
}

// Fit builds a cubic spline through the samples (xs[i], ys[i]).
//
// With smoothness = 0 the spline interpolates the samples exactly and has
// zero curvature at both ends (a natural cubic spline). With smoothness in
// (0,1) the fit is relaxed: writing p = 1−smoothness, the spline minimizes
//
//	p·Σ(ys[i]−a[i])² + (1−p)·∫ s″(t)² dt,
//
// so the fitted knot values a drift away from noisy samples as smoothness
// grows. The inputs are copied; the returned Spline never aliases them.
//
// Complexity: O(n) time and memory.
func Fit(xs, ys []float64, smoothness float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: len(xs)=%d, len(ys)=%d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < MinPoints {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(xs))
	}
	if smoothness < 0 || smoothness >= 1 || math.IsNaN(smoothness) {
		return nil, fmt.Errorf("%w: got %g", ErrBadSmoothness, smoothness)
	}
	for i := 0; i+1 < len(xs); i++ {
		if !(xs[i+1] > xs[i]) {
			return nil, fmt.Errorf("%w: xs[%d]=%g, xs[%d]=%g", ErrNotIncreasing, i, xs[i], i+1, xs[i+1])
		}
	}

	n := len(xs)
	sp := &Spline{
		xs: append([]float64(nil), xs...),
		a:  append([]float64(nil), ys...),
		c:  make([]float64, n),
		b:  make([]float64, n-1),
		d:  make([]float64, n-1),
		dx: (xs[n-1] - xs[0]) / float64(n-1),
	}

	m := n - 2
	h := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}

	// Right-hand side Q·y: second divided differences at the interior knots.
	rhs := make([]float64, m)
	for j := 0; j < m; j++ {
		rhs[j] = (ys[j+2]-ys[j+1])/h[j+1] - (ys[j+1]-ys[j])/h[j]
	}

	if smoothness == 0 {
		// Exact interpolation: the classic tridiagonal system R·c = Q·y.
		sub := make([]float64, m)
		diag := make([]float64, m)
		sup := make([]float64, m)
		for j := 0; j < m; j++ {
			sub[j] = h[j] / 6
			diag[j] = (h[j] + h[j+1]) / 3
			sup[j] = h[j+1] / 6
		}
		solveTridiag(sub, diag, sup, rhs, sp.c[1:n-1])
	} else {
		sp.fitSmoothing(h, rhs, 1-smoothness)
	}

	sp.calcCoeffs(h)

	return sp, nil
}

// fitSmoothing solves the penalized least-squares system
//
//	(p·R + (1−p)·Q·Qᵀ)·c = p·Q·y
//
// for the interior second derivatives c, then corrects the fitted knot
// values a = y − ((1−p)/p)·Qᵀ·c. Q is the second-difference operator, R the
// curvature Gram matrix; both are banded, so the system is symmetric
// pentadiagonal and solves in O(n).
func (sp *Spline) fitSmoothing(h, rhs []float64, p float64) {
	n := len(sp.xs)
	m := n - 2

	inv := make([]float64, len(h))
	for i := range h {
		inv[i] = 1 / h[i]
	}

	d0 := make([]float64, m)
	d1 := make([]float64, m)
	d2 := make([]float64, m)
	q := 1 - p
	for j := 0; j < m; j++ {
		s := inv[j] + inv[j+1]
		d0[j] = p*(h[j]+h[j+1])/3 + q*(inv[j]*inv[j]+s*s+inv[j+1]*inv[j+1])
		if j < m-1 {
			d1[j] = p*h[j+1]/6 - q*inv[j+1]*(s+inv[j+1]+inv[j+2])
		}
		if j < m-2 {
			d2[j] = q * inv[j+1] * inv[j+2]
		}
		rhs[j] *= p
	}
	solvePenta(d0, d1, d2, rhs, sp.c[1:n-1])

	// a = y − ((1−p)/p)·Qᵀ·c, spread over the three-knot support of each row.
	adj := make([]float64, n)
	for j := 0; j < m; j++ {
		cj := sp.c[j+1]
		adj[j] += cj * inv[j]
		adj[j+1] -= cj * (inv[j] + inv[j+1])
		adj[j+2] += cj * inv[j+1]
	}
	scale := q / p
	for i := range sp.a {
		sp.a[i] -= scale * adj[i]
	}
}

// calcCoeffs derives the per-interval b and d coefficients from the fitted
// knot values and second derivatives.
func (sp *Spline) calcCoeffs(h []float64) {
	for i := range sp.b {
		sp.b[i] = (sp.a[i+1]-sp.a[i])/h[i] - h[i]*(2*sp.c[i]+sp.c[i+1])/6
		sp.d[i] = (sp.c[i+1] - sp.c[i]) / (6 * h[i])
	}
}

// NumKnots returns the number of knots in the fitted spline.
func (sp *Spline) NumKnots() int { return len(sp.xs) }

// NodeValues returns a copy of the fitted values at every knot. With
// smoothness 0 these equal the input samples exactly.
func (sp *Spline) NodeValues() []float64 {
	return append([]float64(nil), sp.a...)
}

// NodeDerivatives returns the first derivative of the fitted spline at every
// knot. This is the contract consumed by grid construction to synthesize the
// fx, fy and fxy matrices.
//
// Complexity: O(n).
func (sp *Spline) NodeDerivatives() []float64 {
	n := len(sp.xs)
	out := make([]float64, n)
	copy(out, sp.b)
	last := sp.xs[n-1] - sp.xs[n-2]
	out[n-1] = sp.b[n-2] + sp.c[n-2]*last + 3*sp.d[n-2]*last*last
	return out
}

// Eval computes the spline value at x.
//
// Returns ErrOutOfRange if x lies outside [xs[0], xs[n-1]].
func (sp *Spline) Eval(x float64) (float64, error) {
	i, err := sp.interval(x)
	if err != nil {
		return 0, err
	}
	t := x - sp.xs[i]
	return sp.a[i] + t*(sp.b[i]+t*(sp.c[i]/2+t*sp.d[i])), nil
}

// Deriv computes the derivative of the spline at x to the given order.
// Orders of four and above are exactly zero for a cubic; a negative order
// yields ErrBadOrder.
func (sp *Spline) Deriv(x float64, order int) (float64, error) {
	if order < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrBadOrder, order)
	}
	i, err := sp.interval(x)
	if err != nil {
		return 0, err
	}
	t := x - sp.xs[i]
	switch order {
	case 0:
		return sp.a[i] + t*(sp.b[i]+t*(sp.c[i]/2+t*sp.d[i])), nil
	case 1:
		return sp.b[i] + t*(sp.c[i]+3*t*sp.d[i]), nil
	case 2:
		return sp.c[i] + 6*t*sp.d[i], nil
	case 3:
		return 6 * sp.d[i], nil
	default:
		return 0, nil
	}
}

// interval finds the index of the knot interval bracketing x, guessing from
// the mean spacing before falling back to binary search.
func (sp *Spline) interval(x float64) (int, error) {
	n := len(sp.xs)
	if !(x >= sp.xs[0] && x <= sp.xs[n-1]) {
		return 0, fmt.Errorf("%w: %g outside [%g, %g]", ErrOutOfRange, x, sp.xs[0], sp.xs[n-1])
	}
	if g := int((x - sp.xs[0]) / sp.dx); g >= 0 && g < n-1 && sp.xs[g] <= x && x <= sp.xs[g+1] {
		return g, nil
	}
	i := sort.SearchFloat64s(sp.xs, x)
	if i == n || sp.xs[i] != x {
		i--
	}
	if i > n-2 {
		i = n - 2
	}
	return i, nil
}
