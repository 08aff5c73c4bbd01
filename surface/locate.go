package surface

import (
	"math"
	"sort"
)

// ownsCell reports whether coordinate v falls inside cell i of axis under
// the half-open-except-last convention: cell i spans [axis[i], axis[i+1])
// for i < n−2 and [axis[n−2], axis[n−1]] for the last cell. A point exactly
// on an interior grid line therefore belongs to the cell on its right.
func ownsCell(axis []float64, i int, v float64) bool {
	if v < axis[i] {
		return false
	}
	if i == len(axis)-2 {
		return v <= axis[i+1]
	}

	return v < axis[i+1]
}

// axisStep resolves v against the cells adjacent to cur: it returns the
// index delta (−1, 0 or +1) when v lies in cur or an immediate neighbor,
// and ok=false when v is further away and needs a full search.
//
// Complexity: O(1).
func axisStep(axis []float64, cur int, v float64) (delta int, ok bool) {
	if ownsCell(axis, cur, v) {
		return 0, true
	}
	if cur > 0 && ownsCell(axis, cur-1, v) {
		return -1, true
	}
	if cur < len(axis)-2 && ownsCell(axis, cur+1, v) {
		return 1, true
	}

	return 0, false
}

// searchCell binary-searches axis for the cell owning v. The caller has
// already established that v is inside [axis[0], axis[n−1]].
//
// Complexity: O(log n).
func searchCell(axis []float64, v float64) int {
	i := sort.SearchFloat64s(axis, v)
	if i == len(axis) || axis[i] != v {
		i-- // largest knot ≤ v
	}
	if i > len(axis)-2 {
		i = len(axis) - 2
	}

	return i
}

// regularCell computes the cell owning v on a regularly spaced axis by one
// division, then nudges against the actual knot values so that rounding in
// the division can never break the half-open ownership convention.
//
// Complexity: O(1).
func regularCell(axis []float64, origin, spacing float64, v float64) int {
	i := int(math.Floor((v - origin) / spacing))
	if i < 0 {
		i = 0
	}
	if i > len(axis)-2 {
		i = len(axis) - 2
	}
	if i > 0 && v < axis[i] {
		i--
	} else if i < len(axis)-2 && v >= axis[i+1] {
		i++
	}

	return i
}

// locateCell performs the cold-tier search for the cell owning v,
// dispatching between the arithmetic path for regular axes and binary
// search for irregular ones.
func (s *Surface) locateCell(axis []float64, origin, spacing float64, v float64) int {
	if s.g.IsRegular() {
		return regularCell(axis, origin, spacing, v)
	}

	return searchCell(axis, v)
}
