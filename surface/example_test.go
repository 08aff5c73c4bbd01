package surface_test

import (
	"fmt"

	"github.com/katalvlaran/bicubic/surface"
)

// ExampleSurface builds a surface over f = x²+y² with analytic derivatives
// and evaluates a value and a slope through a shared hint.
func ExampleSurface() {
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
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	var h surface.PatchHint
	p := surface.Point{X: 1.5, Y: 1.5}
	v, _ := s.Value(p, &h)
	dx, _ := s.Derivative([]int{0}, p, &h)
	fmt.Printf("F(1.5, 1.5)   = %.2f\n", v)
	fmt.Printf("∂F/∂X(1.5, 1.5) = %.2f\n", dx)

	// Output:
	// F(1.5, 1.5)   = 4.50
	// ∂F/∂X(1.5, 1.5) = 3.00
}

// ExampleSurface_Stats shows how the access counters expose cache behavior
// under a spatially local walk.
func ExampleSurface_Stats() {
	f := make([][]float64, 4)
	for i := range f {
		f[i] = make([]float64, 4)
		for j := range f[i] {
			f[i][j] = float64(i + j)
		}
	}
	s, err := surface.NewRegular(0, 1, 0, 1, f, surface.DefaultOptions())
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	var h surface.PatchHint
	s.Value(surface.Point{X: 0.25, Y: 0.25}, &h) // cold
	s.Value(surface.Point{X: 0.25, Y: 0.25}, &h) // same point
	s.Value(surface.Point{X: 0.75, Y: 0.50}, &h) // same patch
	s.Value(surface.Point{X: 1.25, Y: 0.50}, &h) // nearby patch

	st := s.Stats()
	fmt.Printf("accesses=%d samePoint=%d samePatch=%d nearby=%d\n",
		st.Accesses, st.SamePoint, st.SamePatch, st.NearbyPatch)

	// Output:
	// accesses=4 samePoint=1 samePatch=1 nearby=1
}
