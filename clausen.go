// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmuon

import (
	"math"
	"math/cmplx"
)

// Clausen2 returns the Clausen function of order 2,
//
//	Cl2(θ) = Im Li2(e^{iθ}) = -∫₀^θ log|2 sin(t/2)| dt.
//
// Cl2 is odd and 2π-periodic; it vanishes at every integer multiple of π.
func Clausen2(theta float64) float64 {
	if math.IsNaN(theta) {
		return math.NaN()
	}

	// reduce to (-2π, 2π) so the zeros at multiples of π stay exact
	theta = math.Mod(theta, 2*pi)
	if theta == 0 || theta == pi || theta == -pi {
		return 0
	}

	return imag(DilogC(cmplx.Exp(complex(0, theta))))
}
