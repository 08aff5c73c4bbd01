package grid

import "errors"

// Sentinel errors for grid construction. All are raised at construction
// time only; a successfully built Grid cannot fail afterwards.
var (
	// ErrTooFewSamples indicates an axis or matrix dimension below four.
	ErrTooFewSamples = errors.New("grid: need at least four samples along each axis")
	// ErrNotIncreasing indicates axis coordinates that are not strictly increasing.
	ErrNotIncreasing = errors.New("grid: axis coordinates must be strictly increasing")
	// ErrShapeMismatch indicates a matrix whose shape differs from len(x) × len(y).
	ErrShapeMismatch = errors.New("grid: matrix shape must match the axis lengths")
	// ErrBadSpacing indicates a non-positive regular grid spacing.
	ErrBadSpacing = errors.New("grid: regular spacing must be greater than zero")
	// ErrBadSmoothness indicates a smoothness parameter outside [0,1).
	ErrBadSmoothness = errors.New("grid: smoothness must lie in [0,1)")
)
