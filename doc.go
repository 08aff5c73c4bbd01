// Package bicubic reconstructs a smooth surface F(X,Y) from samples on a
// rectangular grid and evaluates its value and partial derivatives at
// arbitrary points — fast, thanks to a per-consumer patch-hint cache.
//
// 🚀 What is bicubic?
//
//	A pure-Go bicubic Hermite interpolation library built from small,
//	focused packages:
//		• grid/     — immutable sample storage: axes plus f, fx, fy, fxy matrices
//		• spline/   — 1-D natural & smoothing cubic splines (derivative synthesis)
//		• surface/  — the interpolation core: patch coefficients, locator,
//		              hint cache, statistics, value & derivative evaluation
//		• function/ — generic multi-argument function interface + surface adapter
//		• mesh/     — triangulated sampling of the surface for visualization
//
// ✨ Why choose bicubic?
//
//   - Smooth – C¹ continuous everywhere, C² in practice; ideal for simulation
//   - Fast – repeated, local, and neighboring queries resolve without search
//   - Shareable – one immutable Surface, many private PatchHints; safe for
//     concurrent readers without locks
//   - Honest – out-of-domain queries fail loudly; no silent extrapolation
//
// A Surface is built either from explicit (irregular) axis samples or from an
// origin plus regular spacing. Partial derivatives may be supplied directly or
// synthesized by fitting splines through the samples, with a smoothness knob
// in [0,1) trading exact interpolation for noise tolerance.
//
// Quick sketch:
//
//	s, _ := surface.New(x, y, f, surface.DefaultOptions())
//	var h surface.PatchHint // private per-goroutine cache
//	z, _ := s.Value(surface.Point{X: 1.5, Y: 1.5}, &h)
//	dx, _ := s.Derivative([]int{0}, surface.Point{X: 1.5, Y: 1.5}, &h)
//
// Dive into each package's doc.go for the full contract, complexity notes,
// and error semantics.
package bicubic
