// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmuon

import (
	"math"
	"math/cmplx"
)

const (
	pi    = 3.1415926535897932385
	piSqr = 9.8696044010893586188 // π²
)

// rational approximation of Li2 on the reduced interval [0, 1/2]
var dilogP = [6]float64{
	0.9999999999999999502e+0,
	-2.6883926818565423430e+0,
	2.6477222699473109692e+0,
	-1.1538559607887416355e+0,
	2.0886077795020607837e-1,
	-1.0859777134152463084e-2,
}

var dilogQ = [7]float64{
	1.0000000000000000000e+0,
	-2.9383926818565635485e+0,
	3.2712093293018635389e+0,
	-1.7076702173954289421e+0,
	4.1596017228400603836e-1,
	-3.9801343754084482956e-2,
	8.2743668974466659035e-4,
}

// Dilog returns the real dilogarithm Li2(x) for real x.  For x > 1 the
// function is complex-valued and Dilog returns its real part; DilogC
// carries the full branch information.  NaN input yields NaN.
func Dilog(x float64) float64 {
	// range reduction onto [0, 1/2] with the inversion and reflection
	// identities; r collects the elementary terms, s the series sign
	var y, r float64
	s := 1.0

	switch {
	case x < -1:
		l := math.Log(1 - x)
		y = 1 / (1 - x)
		r = -piSqr/6 + l*(0.5*l-math.Log(-x))
	case x == -1:
		return -piSqr / 12
	case x < 0:
		l := math.Log1p(-x)
		y = x / (x - 1)
		r = -0.5 * l * l
		s = -1
	case x == 0:
		return 0
	case x < 0.5:
		y = x
	case x < 1:
		y = 1 - x
		r = piSqr/6 - math.Log(x)*math.Log(1-x)
		s = -1
	case x == 1:
		return piSqr / 6
	case x < 2:
		l := math.Log(x)
		y = 1 - 1/x
		r = piSqr/6 - l*(math.Log(y)+0.5*l)
	default:
		l := math.Log(x)
		y = 1 / x
		r = piSqr/3 - 0.5*l*l
		s = -1
	}

	y2 := y * y
	y4 := y2 * y2
	p := dilogP[0] + y*dilogP[1] + y2*(dilogP[2]+y*dilogP[3]) +
		y4*(dilogP[4]+y*dilogP[5])
	q := dilogQ[0] + y*dilogQ[1] + y2*(dilogQ[2]+y*dilogQ[3]) +
		y4*(dilogQ[4]+y*dilogQ[5]+y2*dilogQ[6])

	return r + s*y*p/q
}

// Bernoulli-series coefficients for the complex dilogarithm in
// u = -log(1-z)
var dilogBF = [10]float64{
	-1.0 / 4.0,
	1.0 / 36.0,
	-1.0 / 3600.0,
	1.0 / 211680.0,
	-1.0 / 10886400.0,
	1.0 / 526901760.0,
	-4.0647616451442255e-11,
	8.9216910204564526e-13,
	-1.9939295860721076e-14,
	4.5189800296199182e-16,
}

// DilogC returns the complex dilogarithm Li2(z) on the principal branch.
func DilogC(z complex128) complex128 {
	rz, iz := real(z), imag(z)

	if iz == 0 {
		if rz <= 1 {
			return complex(Dilog(rz), 0)
		}
		return complex(Dilog(rz), -pi*math.Log(rz))
	}

	nz := rz*rz + iz*iz
	if nz < machEps {
		return z * (1 + 0.25*z)
	}

	// map to |u| small: series argument u = -log(1-w) where w is z,
	// 1-z or 1/z depending on the region of z
	var u, rest complex128
	sgn := 1.0

	if rz <= 0.5 {
		if nz > 1 {
			lz := cmplx.Log(-z)
			u = -cmplx.Log(1 - 1/z)
			rest = -0.5*lz*lz - complex(piSqr/6, 0)
			sgn = -1
		} else {
			u = -cmplx.Log(1 - z)
		}
	} else {
		if nz <= 2*rz {
			u = -cmplx.Log(z)
			rest = u*cmplx.Log(1-z) + complex(piSqr/6, 0)
			sgn = -1
		} else {
			lz := cmplx.Log(-z)
			u = -cmplx.Log(1 - 1/z)
			rest = -0.5*lz*lz - complex(piSqr/6, 0)
			sgn = -1
		}
	}

	u2 := u * u
	u4 := u2 * u2
	u8 := u4 * u4
	sum := u + u2*(complex(dilogBF[0], 0)+
		u*(complex(dilogBF[1], 0)+
			u2*(complex(dilogBF[2], 0)+
				u2*complex(dilogBF[3], 0)+
				u4*(complex(dilogBF[4], 0)+u2*complex(dilogBF[5], 0))+
				u8*(complex(dilogBF[6], 0)+u2*complex(dilogBF[7], 0)+
					u4*(complex(dilogBF[8], 0)+u2*complex(dilogBF[9], 0))))))

	return complex(sgn, 0)*sum + rest
}
