package surface

import "fmt"

// Evaluation tiers, cheapest first. Each successful call resolves through
// exactly one tier and bumps the matching counter (cold bumps only the
// total).
const (
	tierSamePoint = iota
	tierSamePatch
	tierNearby
	tierCold
)

// Value computes F at p, resolving the enclosing patch through the hint's
// cache tiers. Passing a nil hint evaluates with a transient one — correct,
// but without any caching benefit across calls.
//
// Returns ErrOutOfRange if p lies outside the sampled domain; the hint is
// left untouched in that case.
//
// Complexity: O(1) amortized under spatially local access, O(log n) worst
// case for irregular axes.
func (s *Surface) Value(p Point, h *PatchHint) (float64, error) {
	return s.eval(p, 0, 0, h)
}

// ValueAt is the slow-but-convenient form of Value for single-shot calls:
// it allocates a transient hint, so repeated calls never hit a cache tier
// above cold.
func (s *Surface) ValueAt(p Point) (float64, error) {
	return s.eval(p, 0, 0, nil)
}

// Derivative computes a partial derivative of F at p. components lists the
// axis index (0 = X, 1 = Y) of each successive differentiation: {0} is
// ∂F/∂X, {0, 0} is ∂²F/∂X², {0, 1} (or {1, 0}) is ∂²F/∂X∂Y. An empty list
// computes the value itself.
//
// Orders the bicubic surface cannot carry are exactly zero by definition:
// four or more differentiations along one axis, or any mix of X and Y
// beyond ∂²/∂X∂Y. Those requests succeed and return 0 — only components
// other than 0 and 1 yield ErrBadDerivComponent.
//
// Complexity: as Value.
func (s *Surface) Derivative(components []int, p Point, h *PatchHint) (float64, error) {
	nx, ny := 0, 0
	for _, c := range components {
		switch c {
		case 0:
			nx++
		case 1:
			ny++
		default:
			return 0, fmt.Errorf("%w: got %d", ErrBadDerivComponent, c)
		}
	}

	return s.eval(p, nx, ny, h)
}

// DerivativeAt is the hintless convenience form of Derivative.
func (s *Surface) DerivativeAt(components []int, p Point) (float64, error) {
	return s.Derivative(components, p, nil)
}

// eval is the shared evaluation path behind Value and Derivative. The
// request is identified by its per-axis derivative orders (nx, ny), with
// (0,0) meaning the plain value; mixed-order requests collapse to the same
// signature regardless of component order, which is sound because partial
// derivatives of the patch polynomial commute.
func (s *Surface) eval(p Point, nx, ny int, h *PatchHint) (float64, error) {
	if !s.Contains(p) {
		return 0, fmt.Errorf("%w: (%g, %g)", ErrOutOfRange, p.X, p.Y)
	}
	if h == nil {
		h = new(PatchHint)
	}

	// Tier 1: identical point, identical request — the cached scalar is
	// still the answer.
	if h.hasResult && h.lastX == p.X && h.lastY == p.Y &&
		h.lastNX == nx && h.lastNY == ny {
		s.stats.Accesses++
		s.stats.SamePoint++

		return h.lastResult, nil
	}

	tier := tierCold
	if h.populated {
		if di, okX := axisStep(s.xs, h.i, p.X); okX {
			if dj, okY := axisStep(s.ys, h.j, p.Y); okY {
				if di == 0 && dj == 0 {
					// Tier 2: same cell — keep the coefficients.
					tier = tierSamePatch
				} else {
					// Tier 3: axis-adjacent cell — step the index,
					// recompute coefficients, no search.
					tier = tierNearby
					h.i += di
					h.j += dj
					s.loadPatch(h)
				}
			}
		}
	}
	if tier == tierCold {
		x0, y0 := s.g.Origin()
		dx, dy := s.g.Spacing()
		h.i = s.locateCell(s.xs, x0, dx, p.X)
		h.j = s.locateCell(s.ys, y0, dy, p.Y)
		s.loadPatch(h)
	}

	hx := s.xs[h.i+1] - s.xs[h.i]
	hy := s.ys[h.j+1] - s.ys[h.j]
	u := (p.X - s.xs[h.i]) / hx
	v := (p.Y - s.ys[h.j]) / hy

	var r float64
	switch {
	case nx == 0 && ny == 0:
		r = evalPatch(&h.coeff, u, v)
	case nx > 3 || ny > 3 || (nx > 0 && ny > 0 && !(nx == 1 && ny == 1)):
		// Beyond the surface's non-zero derivatives: exactly zero.
		r = 0
	default:
		r = evalPatchDeriv(&h.coeff, u, v, nx, ny)
		for k := 0; k < nx; k++ {
			r /= hx
		}
		for k := 0; k < ny; k++ {
			r /= hy
		}
	}

	h.hasResult = true
	h.lastX, h.lastY = p.X, p.Y
	h.lastNX, h.lastNY = nx, ny
	h.lastResult = r

	s.stats.Accesses++
	switch tier {
	case tierSamePatch:
		s.stats.SamePatch++
	case tierNearby:
		s.stats.NearbyPatch++
	}

	return r, nil
}
