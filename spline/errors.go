package spline

import "errors"

// Sentinel errors for spline fitting and evaluation.
var (
	// ErrTooFewPoints indicates fewer than MinPoints samples were supplied.
	ErrTooFewPoints = errors.New("spline: need at least four sample points")
	// ErrLengthMismatch indicates xs and ys differ in length.
	ErrLengthMismatch = errors.New("spline: coordinate and value slices must have the same length")
	// ErrNotIncreasing indicates sample coordinates are not strictly increasing.
	ErrNotIncreasing = errors.New("spline: sample coordinates must be strictly increasing")
	// ErrBadSmoothness indicates a smoothness parameter outside [0,1).
	ErrBadSmoothness = errors.New("spline: smoothness must lie in [0,1)")
	// ErrBadOrder indicates a negative derivative order.
	ErrBadOrder = errors.New("spline: derivative order must be non-negative")
	// ErrOutOfRange indicates an evaluation point outside the fitted range.
	ErrOutOfRange = errors.New("spline: evaluation point outside the fitted range")
)
