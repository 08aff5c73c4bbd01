package surface

// Point is a query location on the XY plane.
type Point struct {
	X, Y float64
}

// Stats holds the access counters of one Surface. All counters increase
// monotonically until ResetStats. They are shared by every consumer of the
// surface and are incremented without synchronization: under concurrent
// access some increments may be lost. That imprecision is accepted — the
// counters are diagnostics, not accounting.
type Stats struct {
	// Accesses counts every successful Value or Derivative call.
	Accesses int64
	// SamePoint counts accesses resolved entirely from the hint's cached
	// scalar: identical point, identical request.
	SamePoint int64
	// SamePatch counts accesses that reused the hint's cell and
	// coefficients but had to evaluate at new local coordinates — a new
	// point in the same cell, or new information about the same point.
	SamePatch int64
	// NearbyPatch counts accesses resolved by stepping to an axis-adjacent
	// cell instead of searching; coefficients were recomputed.
	NearbyPatch int64
}

// Options configures surface construction.
type Options struct {
	// Smoothness in [0,1) controls derivative synthesis: 0 builds an exact
	// interpolating surface, larger values relax the fit to tolerate noisy
	// samples (see the spline package).
	Smoothness float64
}

// DefaultOptions returns the default construction options: an exact
// interpolating surface (Smoothness = 0).
func DefaultOptions() Options {
	return Options{}
}
