// Package spline fits 1-D cubic splines through ordered sample points and
// differentiates them, serving both as a standalone interpolator and as the
// derivative-synthesis engine behind the surface package.
//
// What:
//
//   - Fit builds a natural cubic spline (smoothness = 0) that passes exactly
//     through the samples, with zero curvature at both ends.
//   - A smoothness parameter in (0,1) relaxes the fit into a penalized
//     least-squares smoothing spline that tolerates noisy samples: it
//     minimizes p·Σ(yᵢ−aᵢ)² + (1−p)·∫s″(t)²dt with p = 1−smoothness.
//   - Eval and Deriv evaluate the fitted spline and its derivatives at any
//     point inside the sampled range; NodeValues and NodeDerivatives report
//     the fitted values and first derivatives at every knot.
//
// Why:
//
//   - Bicubic surface construction needs fx, fy, fxy at every grid node;
//     fitting splines along each axis and differentiating them at the knots
//     supplies those matrices from value samples alone.
//   - The smoothing mode lets a surface approximate noisy measurement grids
//     without ringing.
//
// Complexity:
//
//   - Fit: O(n) — one tridiagonal (exact) or pentadiagonal (smoothing) solve.
//   - Eval/Deriv: O(1) amortized for near-uniform knots, O(log n) worst case.
//
// Errors:
//
//   - ErrTooFewPoints: fewer than four sample points.
//   - ErrLengthMismatch: coordinate and value slices differ in length.
//   - ErrNotIncreasing: sample coordinates not strictly increasing.
//   - ErrBadSmoothness: smoothness outside [0,1).
//   - ErrBadOrder: negative derivative order.
//   - ErrOutOfRange: evaluation point outside [xs[0], xs[n-1]].
package spline
