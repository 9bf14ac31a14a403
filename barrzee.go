// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmuon

import (
	"math"
	"math/cmplx"
)

// Two-loop Barr-Zee kernels.  FPS, FS and FSferm are the pseudoscalar,
// scalar and sfermion loop functions of Eqs (70)-(72),
// arXiv:hep-ph/0609168; F1, F1t, F2 and F3 are the charged-Higgs
// combinations built on them.  The defining square root sqrt(1-4z)
// turns imaginary at the threshold z = 1/4, so each function carries an
// explicit branch-point value there and a complex-intermediate branch
// above it.  The imaginary parts of the complex branches cancel
// analytically; only the real part is returned.

const (
	ln2 = 0.69314718055994531
	ln4 = 1.3862943611198906 // log 4
)

// fpsC is the pseudoscalar kernel over the complex branch, z > 1/4.
func fpsC(z float64) complex128 {
	y := cmplx.Sqrt(complex(1-4*z, 0))
	zc := complex(z, 0)
	return 2 * zc / y *
		(DilogC(1-0.5*(1-y)/zc) - DilogC(1-0.5*(1+y)/zc))
}

// FPS returns the pseudoscalar Barr-Zee function f_PS(z) for z >= 0.
// FPS(0) = 0 and FPS(1/4) = log 4.  A negative argument is reported and
// yields NaN.
func FPS(z float64) float64 {
	switch {
	case z < 0:
		reportDomain("FPS", "z must not be negative")
		return math.NaN()
	case z == 0:
		return 0
	case z < 0.25:
		y := math.Sqrt(1 - 4*z)
		return 2 * z / y * (Dilog(1-0.5*(1-y)/z) - Dilog(1-0.5*(1+y)/z))
	case z == 0.25:
		return ln4
	}

	return real(fpsC(z))
}

// FS returns the scalar Barr-Zee function f_S(z) for z >= 0.  FS(0) = 0.
func FS(z float64) float64 {
	switch {
	case z < 0:
		reportDomain("FS", "z must not be negative")
		return math.NaN()
	case z == 0:
		return 0
	}

	return (2*z-1)*FPS(z) - 2*z*(2+math.Log(z))
}

// FSferm returns the sfermion Barr-Zee function f_sferm(z) for z >= 0.
// FSferm(0) = 0.
func FSferm(z float64) float64 {
	switch {
	case z < 0:
		reportDomain("FSferm", "z must not be negative")
		return math.NaN()
	case z == 0:
		return 0
	}

	return 0.5 * z * (2 + math.Log(z) - FPS(z))
}

// f1C is the charged-Higgs kernel F1 over the complex branch.
func f1C(w float64) complex128 {
	y := cmplx.Sqrt(complex(1-4*w, 0))
	wc := complex(w, 0)
	lm1my := cmplx.Log(-1 - y)
	l1my := cmplx.Log(1 - y)
	lw := cmplx.Log(wc)
	const l16 = 2.7725887222397812 // 4 log 2

	res := -2*y - y*lw + wc*l16*l1my + 2*wc*lw*l1my -
		2*wc*l1my*(l1my+cmplx.Log(1+y)) +
		(l1my-(1-2*wc)*lm1my)*cmplx.Log((1-y)*(1+y)/(4*wc)) +
		(1-2*wc)*(DilogC((1+y)/(-1+y))-DilogC((-1+y)/(1+y)))

	return wc / y * res
}

// F1 returns the two-loop charged-Higgs function F1(w).  F1(0) = 0 and
// F1(1/4) = -1/2.
func F1(w float64) float64 {
	switch {
	case w < 0:
		reportDomain("F1", "w must not be negative")
		return math.NaN()
	case w == 0:
		return 0
	case w == 0.25:
		return -0.5
	}

	return real(f1C(w))
}

// F1t returns the reduced charged-Higgs function F1t(w) = f_PS(w)/2.
func F1t(w float64) float64 {
	return 0.5 * FPS(w)
}

// f2C is the charged-Higgs kernel F2 over the complex branch.
func f2C(w float64) complex128 {
	y := cmplx.Sqrt(complex(1-4*w, 0))
	wc := complex(w, 0)
	lm1my := cmplx.Log(-1 - y)
	l1my := cmplx.Log(1 - y)
	lw := cmplx.Log(wc)
	const l3 = 1.0397207708399180 // 3/2 log 2

	res := l1my*(l1my-lm1my-l3-lw+0.5*cmplx.Log(1+y)) +
		lm1my*(ln2+lw) + (1+0.5*lw)*y/wc -
		(0.5*l1my-lm1my)*cmplx.Log(2/(1+y)) +
		DilogC((1+y)/(-1+y)) - DilogC((-1+y)/(1+y))

	return wc / y * res
}

// F2 returns the two-loop charged-Higgs function F2(w).
// F2(1/4) = 1 - log 4.
func F2(w float64) float64 {
	switch {
	case w < 0:
		reportDomain("F2", "w must not be negative")
		return math.NaN()
	case w == 0.25:
		return 1 - ln4
	}

	return real(f2C(w))
}

// f3C is the charged-Higgs kernel F3 over the complex branch.
func f3C(w float64) complex128 {
	y := cmplx.Sqrt(complex(1-4*w, 0))
	wc := complex(w, 0)
	lm1my := cmplx.Log(-1 - y)
	l1my := cmplx.Log(1 - y)
	l1py := cmplx.Log(1 + y)
	lm1py := cmplx.Log(-1 + y)
	l2o1py := cmplx.Log(2 / (1 + y))
	lw := cmplx.Log(wc)
	const l8 = 3 * ln2
	const l12 = 12 * ln2

	res := l1my*l1my*(-45-57*y+36*wc*(4+y)) +
		lw*(6*(15+1/wc)*y+3*(-19+12*wc)*(-1+y)*lm1py) +
		6*(30*y+(2*y)/wc+
			19*ln2*lm1py-12*wc*ln2*lm1py-
			19*y*ln2*lm1py+12*wc*y*ln2*lm1py+
			(17-30*wc)*(DilogC((-1+y)/(1+y))-DilogC((1+y)/(-1+y)))) +
		lm1my*(-45*ln2+(-19+12*wc)*y*l8+12*wc*l12+
			(-45-57*y+36*wc*(4+y))*lw+
			3*(-15-19*y+12*wc*(4+y))*l2o1py) +
		l1my*((lm1my+lw)*(45+57*y-36*wc*(4+y))+
			l1py*(63-57*y+18*wc*(1+2*y))+
			39*ln2-198*wc*ln2+19*y*l8-12*wc*y*l8-
			3*(-19+12*wc)*(-1+y)*lm1py+
			(51+57*y-18*wc*(5+2*y))*l2o1py) +
		l1py*(19-12*wc)*(-1+y)*(3*lw+l8+3*lm1py+3*l2o1py)

	return wc / (12 * y) * res
}

// F3 returns the two-loop charged-Higgs function F3(w).
// F3(1/4) = 19/4.
func F3(w float64) float64 {
	switch {
	case w < 0:
		reportDomain("F3", "w must not be negative")
		return math.NaN()
	case w == 0.25:
		return 19.0 / 4.0
	}

	return real(f3C(w))
}
