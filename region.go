// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmuon

// region labels the degeneracy class of a two-argument input.  The
// generic closed forms of the multi-argument functions have removable
// singularities on the region boundaries, so each region selects a
// dedicated analytic continuation.
type region int

const (
	regionGeneric region = iota
	regionNearZero
	regionNearBoth
	regionNearOne
	regionNearEqual
)

func (r region) String() string {
	switch r {
	case regionGeneric:
		return "generic"
	case regionNearZero:
		return "near-zero"
	case regionNearBoth:
		return "near-both-one"
	case regionNearOne:
		return "near-one"
	case regionNearEqual:
		return "near-equal"
	default:
		return "unknown"
	}
}

// classifyPair places (x, y) into a degeneracy region.  Regions overlap
// at their boundaries, so the checks run in a fixed order: zero first,
// then both arguments near one, then either near one, then near each
// other.  Callers that have no zero branch pass zeroTol = 0, which
// disables the first check.
func classifyPair(x, y, oneTol, zeroTol float64) region {
	switch {
	case zeroTol > 0 && (IsZero(x, zeroTol) || IsZero(y, zeroTol)):
		return regionNearZero
	case IsEqual(x, 1, oneTol) && IsEqual(y, 1, oneTol):
		return regionNearBoth
	case IsEqual(x, 1, oneTol) || IsEqual(y, 1, oneTol):
		return regionNearOne
	case IsEqual(x, y, oneTol):
		return regionNearEqual
	}
	return regionGeneric
}
