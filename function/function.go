package function

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bicubic/surface"
)

// ErrArgumentCount is returned when the argument slice length does not
// match the function's arity.
var ErrArgumentCount = errors.New("function: argument count mismatch")

// Function is a real-valued function of ArgumentCount real arguments that
// can be differentiated up to MaxDerivativeOrder times.
//
// components in Derivative lists the argument index of each successive
// differentiation; {0, 0} is the second partial with respect to the first
// argument. Implementations define their own behavior for orders beyond
// MaxDerivativeOrder.
type Function interface {
	// ArgumentCount returns the number of arguments Value and Derivative
	// expect.
	ArgumentCount() int

	// MaxDerivativeOrder returns the highest derivative order the
	// implementation can produce.
	MaxDerivativeOrder() int

	// Value evaluates the function at args.
	Value(args []float64) (float64, error)

	// Derivative evaluates a partial derivative at args.
	Derivative(components []int, args []float64) (float64, error)
}

// SurfaceFunction presents a bicubic surface as a Function of (X, Y). The
// zero value is not usable; construct with NewSurfaceFunction.
type SurfaceFunction struct {
	s    *surface.Surface
	hint surface.PatchHint
}

// compile-time interface check
var _ Function = (*SurfaceFunction)(nil)

// NewSurfaceFunction wraps s. The adapter keeps its own patch hint, so a
// sequence of spatially local calls evaluates at cached-tier cost.
func NewSurfaceFunction(s *surface.Surface) *SurfaceFunction {
	return &SurfaceFunction{s: s}
}

// Surface returns the wrapped surface.
func (f *SurfaceFunction) Surface() *surface.Surface { return f.s }

// ArgumentCount returns 2: a surface is a function of X and Y.
func (f *SurfaceFunction) ArgumentCount() int { return 2 }

// MaxDerivativeOrder is unbounded: derivatives of any order are defined,
// with every order the cubic patches cannot carry being exactly zero.
func (f *SurfaceFunction) MaxDerivativeOrder() int { return math.MaxInt32 }

// Value evaluates the surface at args = {X, Y}.
func (f *SurfaceFunction) Value(args []float64) (float64, error) {
	p, err := f.point(args)
	if err != nil {
		return 0, err
	}

	return f.s.Value(p, &f.hint)
}

// Derivative evaluates a partial derivative of the surface at
// args = {X, Y}. components uses 0 for X and 1 for Y, as in
// surface.Derivative.
func (f *SurfaceFunction) Derivative(components []int, args []float64) (float64, error) {
	p, err := f.point(args)
	if err != nil {
		return 0, err
	}

	return f.s.Derivative(components, p, &f.hint)
}

// ClearHint discards the cached patch state, forcing the next evaluation
// through a cold lookup.
func (f *SurfaceFunction) ClearHint() { f.hint.Clear() }

func (f *SurfaceFunction) point(args []float64) (surface.Point, error) {
	if len(args) != 2 {
		return surface.Point{}, fmt.Errorf("%w: want 2, got %d", ErrArgumentCount, len(args))
	}

	return surface.Point{X: args[0], Y: args[1]}, nil
}
