package surface

// PatchHint carries per-consumer cached state between evaluation calls: the
// last used grid cell, that cell's bicubic coefficients, and the last
// computed scalar. It exists purely to accelerate spatially local query
// sequences; evaluation results never depend on the hint's contents.
//
// A PatchHint is exclusively owned: one goroutine or one evaluator wrapper.
// Sharing a hint between concurrently evaluating goroutines is a data race.
// The Surface a hint accelerates access to may be freely shared.
//
// The zero value is an empty, ready-to-use hint. Copying a PatchHint by
// value yields an independent deep copy of the cached state.
type PatchHint struct {
	populated bool // cell index and coefficients are valid
	i, j      int  // cached cell: [x[i], x[i+1]] × [y[j], y[j+1]]

	// Bicubic coefficients of the cached cell: coeff[a][b] multiplies
	// uᵃ·vᵇ in normalized local coordinates u,v ∈ [0,1].
	coeff [4][4]float64

	hasResult      bool // the last-scalar fields below are valid
	lastX, lastY   float64
	lastNX, lastNY int // request signature: derivative order per axis
	lastResult     float64
}

// IsEmpty reports whether the hint currently holds no cached information,
// as after zero-initialization or Clear.
func (h *PatchHint) IsEmpty() bool { return !h.populated }

// Clear erases all cached state. The next evaluation through this hint
// resolves via a cold search.
func (h *PatchHint) Clear() { *h = PatchHint{} }
