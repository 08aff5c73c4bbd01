// Package surface is the interpolation core: it evaluates a bicubic Hermite
// surface F(X,Y) — value and arbitrary partial derivatives — over a
// rectangular grid of samples, exploiting spatial locality of successive
// queries through a per-consumer PatchHint cache.
//
// What:
//
//   - Surface wraps an immutable sample grid; it is safe for any number of
//     concurrent readers and is shared by pointer (no copying, no locking).
//   - PatchHint caches the most recently used grid cell, its bicubic
//     coefficients and the last computed scalar. Each logical consumer (one
//     goroutine, one evaluator wrapper) owns a private hint; a hint must
//     never be mutated concurrently.
//   - Value and Derivative resolve each query through four tiers: same
//     point, same patch, axis-adjacent patch, and a cold per-axis search
//     (binary for irregular axes, one division for regular ones).
//   - Stats counts accesses and the cache tier that resolved them. The
//     counters are deliberately unsynchronized: they are best-effort
//     diagnostics and concurrent increments may lose updates.
//
// Cell ownership convention: cell i spans [x[i], x[i+1]) — half-open — for
// every cell except the last, which also owns its upper edge. A query lying
// exactly on an interior grid line therefore always resolves to the cell on
// its right (or above), no matter which tier finds it.
//
// Why:
//
//   - Simulation workloads hammer a surface with queries that rarely leave
//     the current patch; resolving those without search or coefficient
//     recomputation makes evaluation O(1) amortized, O(log n) worst case.
//
// Derivative semantics: the surface is C¹ everywhere (C² in practice since
// fxy is shared at the nodes), its third derivatives are discontinuous
// across patch boundaries, and every higher derivative is identically zero.
// A derivative request of order four or more in one variable, or any mixed
// request beyond ∂²/∂X∂Y, evaluates to exactly zero — a defined value, not
// an error.
//
// Errors:
//
//   - ErrOutOfRange: query point outside the sampled domain (no silent
//     extrapolation; Contains lets callers check first).
//   - ErrBadDerivComponent: a derivative component other than 0 (X) or 1 (Y).
//   - Construction re-exports the grid package's validation errors.
package surface
