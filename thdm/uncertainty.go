// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thdm

import "math"

// Uncertainty2L estimates the uncertainty of the two-loop contribution
// amu2L from the missing higher orders.  The relative size of the
// two-loop over the one-loop contribution measures the convergence of
// the perturbative series; the floor of 30% covers the known size of
// the uncalculated three-loop corrections.  With no one-loop value
// available the full two-loop magnitude is returned.
func Uncertainty2L(amu1L, amu2L float64) float64 {
	if amu1L == 0 {
		return math.Abs(amu2L)
	}
	return math.Abs(amu2L) * math.Max(math.Abs(amu2L/amu1L), 0.3)
}
