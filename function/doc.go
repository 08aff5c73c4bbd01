// Package function adapts bicubic surfaces to a generic scalar-function
// calling convention.
//
// What
//
//	Function is the minimal contract of a real-valued function of several
//	real arguments that can report its own arity and differentiability.
//	SurfaceFunction wraps a surface.Surface as a two-argument Function,
//	carrying a private surface.PatchHint so repeated calls through the
//	adapter keep the surface's patch cache warm.
//
// Why
//
//	Numerical consumers (optimizers, integrators, ODE right-hand sides)
//	want one uniform signature: value and derivatives from a slice of
//	arguments. The adapter hides the surface-specific API behind that
//	signature without losing the evaluation cache.
//
// Concurrency
//
//	A SurfaceFunction owns a mutable hint and must not be shared between
//	goroutines. Wrap the same surface once per goroutine instead; the
//	underlying surface is safe to share.
//
// Errors
//
//	ErrArgumentCount — the args slice does not hold exactly two values.
//	Evaluation errors of the underlying surface pass through unchanged.
package function
