package grid

import (
	"fmt"
	"math"
)

// MinSamples is the minimum number of samples required along each axis.
const MinSamples = 4

// Grid is the immutable sample storage behind a bicubic surface. It holds
// two strictly increasing axes and four matrices shaped len(x) × len(y),
// with F[i][j] = F(x[i], y[j]). It is never mutated after construction and
// is therefore safe for concurrent readers without locking.
type Grid struct {
	xs, ys []float64

	f, fx, fy, fxy [][]float64

	// Regular-spacing metadata: when regular is true the axes were expanded
	// from origin + spacing and cell indices can be computed by division
	// instead of search.
	regular bool
	x0, y0  float64
	dx, dy  float64
}

// New builds a grid from explicit axes and function values, synthesizing
// the fx, fy and fxy derivative matrices by fitting cubic splines along
// each axis direction (see the spline package). With smoothness 0 the
// splines interpolate the samples exactly; as smoothness approaches 1 the
// fitted values relax away from noisy samples.
//
// Returns ErrNotIncreasing, ErrTooFewSamples, ErrShapeMismatch or
// ErrBadSmoothness on invalid input.
//
// Complexity: O(nx·ny) time and memory.
func New(x, y []float64, f [][]float64, smoothness float64) (*Grid, error) {
	if err := checkAxes(x, y); err != nil {
		return nil, err
	}
	if err := checkShape(f, len(x), len(y)); err != nil {
		return nil, err
	}
	if smoothness < 0 || smoothness >= 1 || math.IsNaN(smoothness) {
		return nil, fmt.Errorf("%w: got %g", ErrBadSmoothness, smoothness)
	}

	g := &Grid{
		xs: append([]float64(nil), x...),
		ys: append([]float64(nil), y...),
	}
	if err := g.synthesize(cloneMatrix(f), smoothness); err != nil {
		return nil, err
	}

	return g, nil
}

// NewWithDerivatives builds a grid from explicit axes plus precomputed
// value and derivative matrices. No synthesis happens; only monotonicity
// and shape consistency are validated.
//
// Complexity: O(nx·ny) time and memory.
func NewWithDerivatives(x, y []float64, f, fx, fy, fxy [][]float64) (*Grid, error) {
	if err := checkAxes(x, y); err != nil {
		return nil, err
	}
	for _, m := range [][][]float64{f, fx, fy, fxy} {
		if err := checkShape(m, len(x), len(y)); err != nil {
			return nil, err
		}
	}

	return &Grid{
		xs:  append([]float64(nil), x...),
		ys:  append([]float64(nil), y...),
		f:   cloneMatrix(f),
		fx:  cloneMatrix(fx),
		fy:  cloneMatrix(fy),
		fxy: cloneMatrix(fxy),
	}, nil
}

// NewRegular builds a grid over regularly spaced samples: the (i,j)th node
// sits at (x0 + i·dx, y0 + j·dy). Both spacings must be positive. The grid
// keeps the regular layout so downstream cell lookups can replace binary
// search with one division.
//
// Complexity: O(nx·ny) time and memory.
func NewRegular(x0, dx, y0, dy float64, f [][]float64, smoothness float64) (*Grid, error) {
	x, y, err := expandAxes(x0, dx, y0, dy, f)
	if err != nil {
		return nil, err
	}
	g, err := New(x, y, f, smoothness)
	if err != nil {
		return nil, err
	}
	g.markRegular(x0, dx, y0, dy)

	return g, nil
}

// NewRegularWithDerivatives is NewWithDerivatives over a regular layout.
func NewRegularWithDerivatives(x0, dx, y0, dy float64, f, fx, fy, fxy [][]float64) (*Grid, error) {
	x, y, err := expandAxes(x0, dx, y0, dy, f)
	if err != nil {
		return nil, err
	}
	g, err := NewWithDerivatives(x, y, f, fx, fy, fxy)
	if err != nil {
		return nil, err
	}
	g.markRegular(x0, dx, y0, dy)

	return g, nil
}

// NumX returns the number of samples along the X axis.
func (g *Grid) NumX() int { return len(g.xs) }

// NumY returns the number of samples along the Y axis.
func (g *Grid) NumY() int { return len(g.ys) }

// XAxis returns the X sample coordinates. The slice is internal storage:
// read-only by contract.
func (g *Grid) XAxis() []float64 { return g.xs }

// YAxis returns the Y sample coordinates. The slice is internal storage:
// read-only by contract.
func (g *Grid) YAxis() []float64 { return g.ys }

// Values returns the function-value matrix F, read-only by contract.
// With a positive construction smoothness these are the relaxed fitted
// values, not the raw samples.
func (g *Grid) Values() [][]float64 { return g.f }

// XDerivs returns the ∂F/∂x matrix, read-only by contract.
func (g *Grid) XDerivs() [][]float64 { return g.fx }

// YDerivs returns the ∂F/∂y matrix, read-only by contract.
func (g *Grid) YDerivs() [][]float64 { return g.fy }

// CrossDerivs returns the ∂²F/∂x∂y matrix, read-only by contract.
func (g *Grid) CrossDerivs() [][]float64 { return g.fxy }

// IsRegular reports whether the grid was built from origin + spacing.
func (g *Grid) IsRegular() bool { return g.regular }

// Origin returns the (x0, y0) sample location of node (0,0) for a regular
// grid; for an irregular grid it returns the first axis coordinates.
func (g *Grid) Origin() (x0, y0 float64) {
	if g.regular {
		return g.x0, g.y0
	}
	return g.xs[0], g.ys[0]
}

// Spacing returns the per-axis spacing of a regular grid, or (0, 0) when
// the grid is irregular.
func (g *Grid) Spacing() (dx, dy float64) { return g.dx, g.dy }

// MinX returns the smallest X coordinate of the sampled domain.
func (g *Grid) MinX() float64 { return g.xs[0] }

// MaxX returns the largest X coordinate of the sampled domain.
func (g *Grid) MaxX() float64 { return g.xs[len(g.xs)-1] }

// MinY returns the smallest Y coordinate of the sampled domain.
func (g *Grid) MinY() float64 { return g.ys[0] }

// MaxY returns the largest Y coordinate of the sampled domain.
func (g *Grid) MaxY() float64 { return g.ys[len(g.ys)-1] }

func (g *Grid) markRegular(x0, dx, y0, dy float64) {
	g.regular = true
	g.x0, g.y0 = x0, y0
	g.dx, g.dy = dx, dy
}

// expandAxes turns origin + spacing into explicit axis sequences matching
// the shape of f.
func expandAxes(x0, dx, y0, dy float64, f [][]float64) (x, y []float64, err error) {
	if !(dx > 0) || !(dy > 0) {
		return nil, nil, fmt.Errorf("%w: got (%g, %g)", ErrBadSpacing, dx, dy)
	}
	nx := len(f)
	if nx < MinSamples {
		return nil, nil, fmt.Errorf("%w: got %d rows", ErrTooFewSamples, nx)
	}
	ny := len(f[0])

	x = make([]float64, nx)
	for i := range x {
		x[i] = x0 + float64(i)*dx
	}
	y = make([]float64, ny)
	for j := range y {
		y[j] = y0 + float64(j)*dy
	}

	return x, y, nil
}

// checkAxes validates both axis sequences: minimum length and strict
// monotonicity.
func checkAxes(x, y []float64) error {
	for _, axis := range [][]float64{x, y} {
		if len(axis) < MinSamples {
			return fmt.Errorf("%w: got %d", ErrTooFewSamples, len(axis))
		}
		for i := 0; i+1 < len(axis); i++ {
			if !(axis[i+1] > axis[i]) {
				return fmt.Errorf("%w: axis[%d]=%g, axis[%d]=%g",
					ErrNotIncreasing, i, axis[i], i+1, axis[i+1])
			}
		}
	}

	return nil
}

// checkShape validates that m is rectangular with nx rows of ny columns.
func checkShape(m [][]float64, nx, ny int) error {
	if len(m) != nx {
		return fmt.Errorf("%w: got %d rows, want %d", ErrShapeMismatch, len(m), nx)
	}
	for i, row := range m {
		if len(row) != ny {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, i, len(row), ny)
		}
	}

	return nil
}

// cloneMatrix deep-copies a rectangular matrix to guarantee immutability.
func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// allocMatrix allocates a zeroed nx × ny matrix.
func allocMatrix(nx, ny int) [][]float64 {
	out := make([][]float64, nx)
	for i := range out {
		out[i] = make([]float64, ny)
	}

	return out
}
