// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmuon

import "math"

// One-loop form factors of the leading SUSY contributions.  Each takes a
// non-negative squared-mass ratio.  The x = 0 limits are returned by
// explicit check, and a polynomial expansion in x-1 covers the tuned
// radius around the x = 1 degeneracy where the closed forms cancel badly.

// F1C returns the one-loop chargino form factor F1C(x).  F1C(0) = 4,
// F1C(1) = 1.
func F1C(x float64) float64 {
	if IsZero(x, epsZero) {
		return 4
	}

	d := x - 1

	if IsEqual(x, 1, f1cExpTol) {
		return 1 + d*(-0.6+d*(0.4+d*(-2.0/7.0+
			d*(3.0/14.0+d*(-1.0/6.0+
				2.0/15.0*d)))))
	}

	return 2 / pow4(d) * (2 + x*(3+6*math.Log(x)+x*(-6+x)))
}

// F2C returns the one-loop chargino form factor F2C(x).  F2C(0) = 0,
// F2C(1) = 1.
func F2C(x float64) float64 {
	if IsZero(x, epsZero) {
		return 0
	}

	if IsEqual(x, 1, f2cExpTol) {
		d := x - 1
		return 1 + d*(-0.75+d*(0.6+d*(-0.5+d*(3.0/7.0+
			d*(-0.375+1.0/3.0*d)))))
	}

	return 3 / (2 * pow3(1-x)) * (-3 - 2*math.Log(x) + x*(4-x))
}

// F3C returns the two-loop chargino form factor F3C(x).  F3C(1) = 1.
func F3C(x float64) float64 {
	d := x - 1

	if IsEqual(x, 1, f3cExpTol) {
		return 1 +
			d*(1059.0/1175.0+
				d*(-4313.0/3525.0+
					d*(70701.0/57575.0+
						d*(-265541.0/230300.0+
							d*(48919.0/46060.0-
								80755.0/82908.0*d)))))
	}

	lx := math.Log(x)
	x2 := sqr(x)

	return 4 / (141 * pow4(d)) * ((1-x)*(151*x2-335*x+592) +
		6*(21*pow3(x)-108*x2-93*x+50)*lx -
		54*x*(x2-2*x-2)*sqr(lx) -
		108*x*(x2-2*x+12)*Dilog(1-x))
}

// F4C returns the two-loop chargino form factor F4C(x).  F4C(0) = 0,
// F4C(1) = 1.
func F4C(x float64) float64 {
	if IsZero(x, epsZero) {
		return 0
	}

	if IsEqual(x, 1, f4cExpTol) {
		d := x - 1
		return 1 +
			d*(-45.0/122.0+
				d*(941.0/6100.0+
					d*(-17.0/305.0+
						d*(282.0/74725.0+
							d*(177.0/6832.0-47021.0/1076040.0*d)))))
	}

	lx := math.Log(x)
	x2 := sqr(x)

	return -9 / (122 * pow3(1-x)) * (8*(x2-3*x+2) +
		(11*x2-40*x+5)*lx -
		2*(x2-2*x-2)*sqr(lx) -
		4*(x2-2*x+9)*Dilog(1-x))
}

// F1N returns the one-loop neutralino form factor F1N(x).  F1N(0) = 2,
// F1N(1) = 1.
func F1N(x float64) float64 {
	if IsZero(x, epsZero) {
		return 2
	}

	d := x - 1

	if IsEqual(x, 1, f1nExpTol) {
		return 1 + d*(-0.4+d*(0.2+d*(-4.0/35.0+
			d*(1.0/14.0+d*(-1.0/21.0+1.0/30.0*d)))))
	}

	return 2 / pow4(d) * (1 + x*(-6+x*(3-6*math.Log(x)+2*x)))
}

// F2N returns the one-loop neutralino form factor F2N(x).  F2N(0) = 3,
// F2N(1) = 1.
func F2N(x float64) float64 {
	if IsZero(x, epsZero) {
		return 3
	}

	if IsEqual(x, 1, f2nExpTol) {
		d := x - 1
		return 1 + d*(-0.5+d*(0.3+d*(-0.2+
			d*(1.0/7.0+d*(-3.0/28.0+1.0/12.0*d)))))
	}

	return 3 / pow3(1-x) * (1 + x*(2*math.Log(x)-x))
}

// F3N returns the two-loop neutralino form factor F3N(x).
// F3N(0) = 8/105, F3N(1) = 1.
func F3N(x float64) float64 {
	if IsZero(x, epsZero) {
		return 8.0 / 105.0
	}

	d := x - 1

	if IsEqual(x, 1, f3nExpTol) {
		return 1 + d*(76/875.0+d*(-431/2625.0+d*(5858/42875.0+
			d*(-3561/34300.0+d*(23/294.0-4381/73500.0*d)))))
	}

	x2 := sqr(x)

	return 4 / (105 * pow4(d)) * ((1-x)*(-97*x2-529*x+2) +
		6*x2*(13*x+81)*math.Log(x) +
		108*x*(7*x+4)*Dilog(1-x))
}

// F4N returns the two-loop neutralino form factor F4N(x).
// F4N(0) = -3/4·(π²-9), F4N(1) = 1.
func F4N(x float64) float64 {
	if IsZero(x, epsZero) {
		return -0.75 * (piSqr - 9)
	}

	if IsEqual(x, 1, f4nExpTol) {
		d := x - 1
		return 1 + sqr(d)*(-111.0/800.0+d*(59.0/400.0+d*(-129.0/980.0+
			d*(177.0/1568.0-775.0/8064.0*d))))
	}

	return -2.25 / pow3(1-x) * ((x+3)*(x*math.Log(x)+x-1) +
		(6*x+2)*Dilog(1-x))
}

// G3 returns the loop function G3(x) entering Fa.  G3(1) = 1/3.
func G3(x float64) float64 {
	if IsEqual(x, 1, g3ExpTol) {
		d := x - 1
		return 1.0/3.0 + d*(-0.25+d*(0.2+(-1.0/6.0+d/7.0)*d))
	}

	return 1 / (2 * pow3(x-1)) * ((x-1)*(x-3) + 2*math.Log(x))
}

// G4 returns the loop function G4(x) entering Fb.  G4(1) = 1/6.
func G4(x float64) float64 {
	if IsEqual(x, 1, g4ExpTol) {
		d := x - 1
		return 1.0/6.0 + d*(-1.0/12.0+d*(0.05+(-1.0/30.0+d/42.0)*d))
	}

	return 1 / (2 * pow3(x-1)) * ((x-1)*(x+1) - 2*x*math.Log(x))
}

// fa11 expands Fa around x = y = 1.
func fa11(x, y float64) float64 {
	x1 := x - 1
	y1 := y - 1

	return 0.25 + (-0.2+y1/6)*y1 +
		x1*(-0.2+(1.0/6.0-y1/7)*y1) +
		sqr(x1)*(1.0/6.0+(-1.0/7.0+y1/8)*y1)
}

// fa1 expands Fa around y = 1, for x away from 0 and 1.
func fa1(x, y float64) float64 {
	x1 := x - 1
	y1 := y - 1
	lx := math.Log(x)
	x14 := pow4(x1)
	x15 := x14 * x1
	x16 := x15 * x1

	return (-11-6*lx+x*(18+x*(-9+2*x)))/(6*x14) +
		y1*(-25-12*lx+x*(48+x*(-36+x*(16-3*x))))/(12*x15) +
		sqr(y1)*(-137-60*lx+x*(300+x*(-300+x*(200+x*(-75+12*x)))))/(60*x16)
}

// fax expands Fa around y = x, for x away from 0 and 1.
func fax(x, y float64) float64 {
	x1 := x - 1
	d := y - x
	lx := math.Log(x)
	x14 := pow4(x1)
	x15 := x14 * x1
	x16 := x15 * x1
	x2 := sqr(x)
	x3 := x2 * x

	return (2+x*(3+6*lx+x*(-6+x)))/(2*x14*x) -
		d*(-1+x*(8+x*(12*lx+x*(-8+x))))/(2*x15*x2) -
		sqr(d)*(-2+x*(15+x*(-60+x*(20-60*lx+x*(30-3*x)))))/(6*x16*x3)
}

// Fa is the symmetric two-argument form factor built from G3,
//
//	Fa(x,y) = -(G3(x) - G3(y)) / (x - y),
//
// with dedicated expansions where the finite-difference quotient
// degenerates (x≈y, x≈1, y≈1, x≈y≈1) and value 0 when either argument
// vanishes.  Negative arguments are outside the physical domain: a
// diagnostic is reported and NaN returned.
func Fa(x, y float64) float64 {
	if x < 0 || y < 0 {
		reportDomain("Fa", "arguments must not be negative")
		return math.NaN()
	}

	switch classifyPair(x, y, faDegenTol, epsZero) {
	case regionNearZero:
		return 0
	case regionNearBoth:
		return fa11(x, y)
	case regionNearOne:
		if IsEqual(x, 1, faDegenTol) {
			return fa1(y, x)
		}
		return fa1(x, y)
	case regionNearEqual:
		return fax(x, y)
	}

	return -(G3(x) - G3(y)) / (x - y)
}

// fb11 expands Fb around x = y = 1.
func fb11(x, y float64) float64 {
	x1 := x - 1
	y1 := y - 1

	return 1.0/12.0 + (-0.05+y1/30)*y1 +
		x1*(-0.05+(1.0/30.0-y1/42)*y1+
			x1*(1.0/30.0+(-1.0/42.0+y1/56)*y1))
}

// fb1 expands Fb around y = 1, for x away from 0 and 1.
func fb1(x, y float64) float64 {
	x1 := x - 1
	y1 := y - 1
	lx := math.Log(x)
	x14 := pow4(x1)
	x15 := x14 * x1
	x16 := x15 * x1

	return (2+x*(3+6*lx+x*(-6+x)))/(6*x14) +
		y1*(3+x*(10+12*lx+x*(-18+x*(6-x))))/(12*x15) +
		sqr(y1)*(12+x*(65+60*lx+x*(-120+x*(60+x*(-20+3*x)))))/(60*x16)
}

// fbx expands Fb around y = x, for x away from 0 and 1.
func fbx(x, y float64) float64 {
	x1 := x - 1
	d := y - x
	lx := math.Log(x)
	x14 := pow4(x1)
	x15 := x14 * x1
	x16 := x15 * x1

	return (-5-2*lx+x*(4-4*lx+x))/(2*x14) -
		d*(-1+x*(-9-6*lx+x*(9-6*lx+x)))/(2*x15*x) -
		sqr(d)*(-1+x*(12+x*(36+36*lx+x*(-44+24*lx-3*x))))/(6*x16*sqr(x))
}

// Fb is the symmetric two-argument form factor built from G4,
//
//	Fb(x,y) = -(G4(x) - G4(y)) / (x - y),
//
// with the same degeneracy treatment and domain policy as Fa.
func Fb(x, y float64) float64 {
	if x < 0 || y < 0 {
		reportDomain("Fb", "arguments must not be negative")
		return math.NaN()
	}

	switch classifyPair(x, y, fbDegenTol, epsZero) {
	case regionNearZero:
		return 0
	case regionNearBoth:
		return fb11(x, y)
	case regionNearOne:
		if IsEqual(x, 1, fbDegenTol) {
			return fb1(y, x)
		}
		return fb1(x, y)
	case regionNearEqual:
		return fbx(x, y)
	}

	return -(G4(x) - G4(y)) / (x - y)
}
