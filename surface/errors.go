package surface

import "errors"

// Sentinel errors for surface construction and evaluation.
var (
	// ErrOutOfRange indicates a query point outside the sampled domain.
	// The surface never extrapolates; use Contains to probe first.
	ErrOutOfRange = errors.New("surface: query point lies outside the sampled domain")
	// ErrBadDerivComponent indicates a derivative component other than
	// 0 (X) or 1 (Y). Any composition of 0s and 1s is legal — it may
	// legitimately evaluate to zero — but other axis indices are not.
	ErrBadDerivComponent = errors.New("surface: derivative components must be 0 (X) or 1 (Y)")
	// ErrNilGrid indicates FromGrid was handed a nil grid.
	ErrNilGrid = errors.New("surface: nil grid")
)
