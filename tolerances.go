// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gmuon

// Crossover radii between the generic closed forms and their series
// expansions.  Each value is tuned so that, at the boundary, the
// cancellation error of the closed form is comparable to the truncation
// error of the expansion; widening or narrowing a radius trades one
// error for the other.  Branch-boundary continuity is asserted in the
// package tests, so an adjusted radius that breaks the balance fails CI.
const (
	// phiLambdaTol bounds |λ²(u,v)| below which Phi is defined as 0.
	// Phi is always consumed multiplied by λ², so returning 0 here
	// avoids propagating 0/0 from the generic formula.
	phiLambdaTol = 1e-11

	// phiDegenTol is the u≈1, v≈1, u≈v sub-case radius of the
	// triangle-function branches.
	phiDegenTol = 1e-7

	// iabcDegenTol is the relative radius, in the squared masses, of
	// the degenerate branches of Iabc.
	iabcDegenTol = 0.001

	// Expansion radii around x = 1 of the one-loop form factors.
	f1cExpTol = 0.03
	f2cExpTol = 0.03
	f3cExpTol = 0.03
	f4cExpTol = 0.03
	f1nExpTol = 0.03
	f2nExpTol = 0.04
	f3nExpTol = 0.03
	f4nExpTol = 0.03
	g3ExpTol  = 0.01
	g4ExpTol  = 0.01

	// Degenerate-region radii of the two-argument factors.  Fa varies
	// an order of magnitude faster near x = y = 1 than Fb does, hence
	// the narrower band.
	faDegenTol = 0.001
	fbDegenTol = 0.01
)
