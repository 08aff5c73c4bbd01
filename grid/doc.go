// Package grid stores the immutable sample data behind a bicubic surface:
// two strictly increasing axes and four equally shaped matrices holding the
// function values f and the partial derivatives fx, fy and fxy at every
// grid node.
//
// What:
//
//   - New builds a grid from axes and values alone, synthesizing the
//     derivative matrices by fitting cubic splines along each axis
//     direction and differentiating them at the knots.
//   - NewWithDerivatives accepts precomputed fx, fy, fxy for callers that
//     know the analytic derivatives (validation only, no synthesis).
//   - NewRegular and NewRegularWithDerivatives take an origin and positive
//     per-axis spacing instead of explicit axes; the grid remembers the
//     regular layout so cell lookups can use O(1) arithmetic downstream.
//
// Why:
//
//   - A bicubic Hermite patch needs f, fx, fy and fxy at its four corners;
//     keeping all four matrices node-aligned and immutable makes the patch
//     construction trivial and safe to share across goroutines.
//
// All constructor inputs are deep-copied, so a Grid can never be mutated
// through slices the caller retains. Accessors returning slices expose the
// internal storage for performance; treat them as read-only.
//
// Complexity:
//
//   - New: O(nx·ny) — one spline fit per row and per column.
//   - NewWithDerivatives: O(nx·ny) for validation and copying.
//   - All accessors: O(1).
//
// Errors:
//
//   - ErrTooFewSamples: an axis or matrix dimension below four.
//   - ErrNotIncreasing: axis coordinates not strictly increasing.
//   - ErrShapeMismatch: a matrix not shaped len(x) × len(y).
//   - ErrBadSpacing: non-positive regular spacing.
//   - ErrBadSmoothness: smoothness outside [0,1).
package grid
