// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmuon

import "math"

const (
	// machEps is the double-precision machine epsilon.
	machEps = 2.220446049250313e-16

	// epsZero is the zero-detection width used by the form factors:
	// ten machine epsilons, wide enough to absorb rounding in the
	// mass-ratio arithmetic of callers.
	epsZero = 10 * machEps
)

func sqr(x float64) float64  { return x * x }
func pow3(x float64) float64 { return x * x * x }
func pow4(x float64) float64 { return sqr(sqr(x)) }

// IsZero reports whether |a| < prec.
func IsZero(a, prec float64) bool {
	return math.Abs(a) < prec
}

// IsEqual reports whether a and b agree to the relative precision prec:
//
//	|a-b| < prec * (1 + max(|a|, |b|))
//
// The 1+max scaling makes the test relative for large magnitudes and
// absolute near zero.  Every degeneracy branch in this package selects
// its series expansion through this predicate, so the per-call-site
// choice of prec (see tolerances.go) is the crossover radius between the
// closed form and the expansion.
func IsEqual(a, b, prec float64) bool {
	m := math.Max(math.Abs(a), math.Abs(b))
	return IsZero(a-b, prec*(1+m))
}

// sort3 returns its arguments in ascending order.  Symmetric functions
// canonicalize their arguments through sort3 so that a single code path
// serves all permutations.
func sort3(x, y, z float64) (float64, float64, float64) {
	if x > y {
		x, y = y, x
	}
	if y > z {
		y, z = z, y
	}
	if x > y {
		x, y = y, x
	}
	return x, y, z
}
