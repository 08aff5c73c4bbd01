package grid

import (
	"fmt"

	"github.com/katalvlaran/bicubic/spline"
)

// synthesize derives the fx, fy and fxy matrices from the value matrix f by
// fitting 1-D splines along each axis direction and differentiating them at
// the knots:
//
//   - fx: one spline per column j through (x, f[·][j]);
//   - fy: one spline per row i through (y, f[i][·]);
//   - fxy: one exact spline per column j through (x, fy[·][j]).
//
// With a positive smoothness the column and row fits also relax the stored
// values, so the surface no longer passes exactly through the raw samples;
// the cross fit is always exact since fy is already smooth. The fits are
// sequential (columns first, then rows on the column-smoothed values),
// matching the usual smoothing-surface construction.
//
// f is owned by the callee and becomes the grid's value matrix.
func (g *Grid) synthesize(f [][]float64, smoothness float64) error {
	nx, ny := len(g.xs), len(g.ys)
	fx := allocMatrix(nx, ny)
	fy := allocMatrix(nx, ny)
	fxy := allocMatrix(nx, ny)

	col := make([]float64, nx)

	// Columns: values and ∂F/∂x along each line of constant y.
	for j := 0; j < ny; j++ {
		for i := range col {
			col[i] = f[i][j]
		}
		sp, err := spline.Fit(g.xs, col, smoothness)
		if err != nil {
			return fmt.Errorf("grid: fx column %d: %w", j, err)
		}
		vals, derivs := sp.NodeValues(), sp.NodeDerivatives()
		for i := 0; i < nx; i++ {
			f[i][j] = vals[i]
			fx[i][j] = derivs[i]
		}
	}

	// Rows: values and ∂F/∂y along each line of constant x.
	for i := 0; i < nx; i++ {
		sp, err := spline.Fit(g.ys, f[i], smoothness)
		if err != nil {
			return fmt.Errorf("grid: fy row %d: %w", i, err)
		}
		copy(f[i], sp.NodeValues())
		copy(fy[i], sp.NodeDerivatives())
	}

	// Cross derivatives: differentiate the fy columns along x.
	for j := 0; j < ny; j++ {
		for i := range col {
			col[i] = fy[i][j]
		}
		sp, err := spline.Fit(g.xs, col, 0)
		if err != nil {
			return fmt.Errorf("grid: fxy column %d: %w", j, err)
		}
		derivs := sp.NodeDerivatives()
		for i := 0; i < nx; i++ {
			fxy[i][j] = derivs[i]
		}
	}

	g.f, g.fx, g.fy, g.fxy = f, fx, fy, fxy

	return nil
}
