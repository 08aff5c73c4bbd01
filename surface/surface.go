package surface

import (
	"github.com/katalvlaran/bicubic/grid"
)

// Surface evaluates a bicubic Hermite interpolation of F(X,Y) over a
// rectangular sample grid. It is immutable after construction — the sole
// exception being the best-effort Stats counters — and is therefore safe
// for concurrent readers without locking. Share one Surface by pointer and
// give each consumer a private PatchHint.
type Surface struct {
	g *grid.Grid

	// Storage handles resolved once at construction to keep the hot path
	// free of accessor calls.
	xs, ys         []float64
	f, fx, fy, fxy [][]float64

	stats Stats
}

// New builds a surface from explicit axes and function values, synthesizing
// the derivative matrices per opts.Smoothness (see grid.New).
func New(x, y []float64, f [][]float64, opts Options) (*Surface, error) {
	g, err := grid.New(x, y, f, opts.Smoothness)
	if err != nil {
		return nil, err
	}

	return FromGrid(g)
}

// NewRegular builds a surface over regularly spaced samples with node (i,j)
// at (x0 + i·dx, y0 + j·dy). Cold cell lookups on a regular surface cost one
// division instead of a binary search.
func NewRegular(x0, dx, y0, dy float64, f [][]float64, opts Options) (*Surface, error) {
	g, err := grid.NewRegular(x0, dx, y0, dy, f, opts.Smoothness)
	if err != nil {
		return nil, err
	}

	return FromGrid(g)
}

// NewWithDerivatives builds a surface from precomputed f, fx, fy and fxy
// matrices — the advanced path for callers that know the analytic
// derivatives. No synthesis is performed.
func NewWithDerivatives(x, y []float64, f, fx, fy, fxy [][]float64) (*Surface, error) {
	g, err := grid.NewWithDerivatives(x, y, f, fx, fy, fxy)
	if err != nil {
		return nil, err
	}

	return FromGrid(g)
}

// NewRegularWithDerivatives is NewWithDerivatives over a regular layout.
func NewRegularWithDerivatives(x0, dx, y0, dy float64, f, fx, fy, fxy [][]float64) (*Surface, error) {
	g, err := grid.NewRegularWithDerivatives(x0, dx, y0, dy, f, fx, fy, fxy)
	if err != nil {
		return nil, err
	}

	return FromGrid(g)
}

// FromGrid wraps an already validated grid in a Surface.
func FromGrid(g *grid.Grid) (*Surface, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	return &Surface{
		g:   g,
		xs:  g.XAxis(),
		ys:  g.YAxis(),
		f:   g.Values(),
		fx:  g.XDerivs(),
		fy:  g.YDerivs(),
		fxy: g.CrossDerivs(),
	}, nil
}

// Grid returns the underlying immutable sample grid.
func (s *Surface) Grid() *grid.Grid { return s.g }

// Contains reports whether p lies inside the sampled domain
// [min(x), max(x)] × [min(y), max(y)]. It never touches a hint and never
// updates statistics, so callers can probe freely before evaluating.
//
// Complexity: O(1).
func (s *Surface) Contains(p Point) bool {
	return p.X >= s.xs[0] && p.X <= s.xs[len(s.xs)-1] &&
		p.Y >= s.ys[0] && p.Y <= s.ys[len(s.ys)-1]
}

// Stats returns a snapshot of the access counters. Under concurrent
// evaluation the snapshot is best-effort, consistent with how the counters
// are maintained.
func (s *Surface) Stats() Stats { return s.stats }

// ResetStats zeroes all access counters. Any consumer of a shared surface
// may reset them; simultaneous use from multiple goroutines is not
// coordinated in any careful manner.
func (s *Surface) ResetStats() { s.stats = Stats{} }
