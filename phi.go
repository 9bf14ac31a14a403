// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmuon

import "math"

// phiUnity is Φ(u,v) at u = v = 1.
const phiUnity = 2.343907238689459

// lambda2 is the Källén discriminant λ²(u,v) = (1-u-v)² - 4uv.  Its sign
// decides whether the mass triangle closes: positive for a real triangle,
// negative for a broken one.
func lambda2(u, v float64) float64 {
	return sqr(1-u-v) - 4*u*v
}

// phiPos evaluates Φ(u,v) for λ²(u,v) > 0 with u, v ≤ 1, via
// dilogarithms.  Symmetric in u and v.
func phiPos(u, v float64) float64 {
	switch classifyPair(u, v, phiDegenTol, 0) {
	case regionNearBoth:
		return phiUnity
	case regionNearEqual:
		lambda := math.Sqrt(lambda2(u, v))
		return (-sqr(math.Log(u)) +
			2*sqr(math.Log(0.5*(1-lambda))) -
			4*Dilog(0.5*(1-lambda)) +
			piSqr/3) / lambda
	}

	lambda := math.Sqrt(lambda2(u, v))
	return (-math.Log(u)*math.Log(v) +
		2*math.Log(0.5*(1-lambda+u-v))*math.Log(0.5*(1-lambda-u+v)) -
		2*Dilog(0.5*(1-lambda+u-v)) -
		2*Dilog(0.5*(1-lambda-u+v)) +
		piSqr/3) / lambda
}

// phiNeg1v is the u = 1 limit of the broken-triangle branch.
func phiNeg1v(v, lambda float64) float64 {
	return 2 * (Clausen2(2*math.Acos(0.5*(2-v))) +
		2*Clausen2(2*math.Acos(0.5*math.Sqrt(v)))) / lambda
}

// phiNeg evaluates Φ(u,v) for λ²(u,v) < 0 via Clausen functions of
// arccosine arguments.  Symmetric in u and v.
func phiNeg(u, v float64) float64 {
	switch classifyPair(u, v, phiDegenTol, 0) {
	case regionNearBoth:
		return phiUnity
	case regionNearOne:
		lambda := math.Sqrt(-lambda2(u, v))
		if IsEqual(u, 1, phiDegenTol) {
			return phiNeg1v(v, lambda)
		}
		return phiNeg1v(u, lambda)
	case regionNearEqual:
		lambda := math.Sqrt(-lambda2(u, v))
		return 2 * (2*Clausen2(2*math.Acos(1/(2*math.Sqrt(u)))) +
			Clausen2(2*math.Acos((2*u-1)/(2*math.Abs(u))))) / lambda
	}

	lambda := math.Sqrt(-lambda2(u, v))
	sqrtu := math.Sqrt(u)
	sqrtv := math.Sqrt(v)
	return 2 * (Clausen2(2*math.Acos(0.5*(1+u-v)/sqrtu)) +
		Clausen2(2*math.Acos(0.5*(1-u+v)/sqrtv)) +
		Clausen2(2*math.Acos(0.5*(u+v-1)/(sqrtu*sqrtv)))) / lambda
}

// phiUV evaluates Φ(u,v) with u = x/z, v = y/z.  The identities
//
//	Φ(u,v) = Φ(v,u) = Φ(1/u,v/u)/u = Φ(1/v,u/v)/v
//
// map any argument larger than one back into the unit region, so no
// logarithm of a large ratio is ever taken.
func phiUV(u, v float64) float64 {
	lambda := lambda2(u, v)

	if IsZero(lambda, phiLambdaTol) {
		// Φ only ever appears multiplied by λ², so 0 here is the
		// value that keeps the product finite.
		return 0
	}

	if lambda > 0 {
		if u <= 1 && v <= 1 {
			return phiPos(u, v)
		}
		if u >= 1 && v/u <= 1 {
			return phiPos(1/u, v/u) / u
		}
		// v >= 1 && u/v <= 1
		return phiPos(1/v, u/v) / v
	}

	return phiNeg(u, v)
}

// Phi is the three-point triangle function Φ(x,y,z) of Davydychev and
// Tausk, Nucl. Phys. B397 (1993) 23.  The arguments are interpreted as
// squared masses and may be given in any order.
func Phi(x, y, z float64) float64 {
	x, y, z = sort3(x, y, z)
	u, v := x/z, y/z
	return phiUV(u, v) * z * lambda2(u, v) / 2
}

// i2aaa is Iabc at a ≈ b ≈ c, expanded around the common squared mass a.
func i2aaa(a, b, c float64) float64 {
	ba := b - a
	ca := c - a
	a2 := sqr(a)
	a3 := a2 * a

	return 0.5/a + (-ba-ca)/(6*a2) + (sqr(ba)+ba*ca+sqr(ca))/(12*a3)
}

// i2aac is Iabc at a ≈ b, a≠c, expanded in b-a.
func i2aac(a, b, c float64) float64 {
	ba := b - a
	ac := a - c
	a2 := sqr(a)
	a3 := a2 * a
	c2 := sqr(c)
	c3 := c2 * c
	ac2 := sqr(ac)
	ac3 := ac2 * ac
	ac4 := ac2 * ac2
	lac := math.Log(a / c)

	return (ac-c*lac)/ac2 +
		ba*(-a2+c2+2*a*c*lac)/(2*a*ac3) +
		sqr(ba)*(2*a3+3*a2*c-6*a*c2+c3-6*a2*c*lac)/(6*a2*ac4)
}

// i2aa0 is Iabc at a ≈ b, c = 0.
func i2aa0(a, b float64) float64 {
	a2 := sqr(a)
	a3 := a2 * a
	ba := b - a

	return 1/a - ba/(2*a2) + sqr(ba)/(3*a3)
}

// i20bc is Iabc at a = 0, b ≠ c.
func i20bc(b, c float64) float64 {
	return math.Log(b/c) / (b - c)
}

// Iabc is the scalar three-point loop integral
//
//	I(a,b,c) = (a²b² log(a²/b²) + b²c² log(b²/c²) + c²a² log(c²/a²))
//	           / ((a²-b²)(b²-c²)(a²-c²))
//
// of three masses (not squared masses).  The value is symmetric in its
// arguments; every mass degeneracy and zero-mass limit is served by a
// dedicated expansion so that adjacent branches agree at their boundary.
func Iabc(a, b, c float64) float64 {
	if (IsZero(a, epsZero) && IsZero(b, epsZero)) ||
		(IsZero(a, epsZero) && IsZero(c, epsZero)) ||
		(IsZero(b, epsZero) && IsZero(c, epsZero)) {
		return 0
	}

	a2 := sqr(a)
	b2 := sqr(b)
	c2 := sqr(c)

	if IsEqual(a2, b2, iabcDegenTol) && IsEqual(a2, c2, iabcDegenTol) {
		return i2aaa(a2, b2, c2)
	}

	if IsEqual(a2, b2, iabcDegenTol) {
		if IsZero(c, epsZero) {
			return i2aa0(a2, b2)
		}
		return i2aac(a2, b2, c2)
	}

	if IsEqual(b2, c2, iabcDegenTol) {
		if IsZero(a, epsZero) {
			return i2aa0(b2, c2)
		}
		return i2aac(b2, c2, a2)
	}

	if IsEqual(a2, c2, iabcDegenTol) {
		if IsZero(b, epsZero) {
			return i2aa0(a2, c2)
		}
		return i2aac(a2, c2, b2)
	}

	if IsZero(a, epsZero) {
		return i20bc(b2, c2)
	}
	if IsZero(b, epsZero) {
		return i20bc(c2, a2)
	}
	if IsZero(c, epsZero) {
		return i20bc(a2, b2)
	}

	return (a2*b2*math.Log(a2/b2) +
		b2*c2*math.Log(b2/c2) +
		c2*a2*math.Log(c2/a2)) /
		((a2 - b2) * (b2 - c2) * (a2 - c2))
}
