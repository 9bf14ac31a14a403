// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thdm

import (
	"math"

	"github.com/qedlab/gmuon"
)

// Two-loop bosonic contributions, Eqs (49)-(52) of arXiv:1607.06292.
// Only the electroweak-scale addition of Eq (49) is evaluated.  The
// Yukawa and non-Yukawa pieces have no complete set of published
// coefficients at this order and contribute zero; the kernel of
// Eq (102) is kept for the eventual assembly.

// BosonicParams carries the inputs of the bosonic two-loop assembly.
type BosonicParams struct {
	AlphaEM float64
	MM      float64 // muon mass
	MW      float64
	MZ      float64
	MhSM    float64
	MHp     float64

	TanBeta float64
	ZetaL   float64
	Lambda5 float64
	Eta     float64
}

// NewBosonicParams assembles the two-loop bosonic inputs.
func NewBosonicParams(sm SM, sp Spectrum, b GaugeBasis) BosonicParams {
	_, _, zl := b.Zetas()
	return BosonicParams{
		AlphaEM: sm.AlphaEM,
		MM:      sm.MMuon(),
		MW:      sm.MW,
		MZ:      sm.MZ,
		MhSM:    sm.MhSM,
		MHp:     sp.MHp,
		TanBeta: b.TanBeta,
		ZetaL:   zl,
		Lambda5: b.Lambda5,
		Eta:     sp.Eta,
	}
}

// yf1 is the Yukawa kernel of Eq (102), in the variables u = mhSM²/mZ²
// and w = mH±²/mZ².
func yf1(u, w, cw2 float64) float64 {
	cw4 := sqr(cw2)
	lw := math.Log(w)
	lu := math.Log(u)

	return -72*cw2*(-1+cw2)*(u+2*w)/u -
		36*cw2*(-1+cw2)*(u+2*w)/u*lw +
		9*(-8*cw4-3*u+2*cw2*(4+u))*(u+2*w)/(2*(u-1)*u)*lu -
		9*(3-10*cw2+8*cw4)*w*(u+2*w)/((4*w-1)*(u-1))*gmuon.Phi(w, w, 1) +
		9*(8*cw4+3*u-2*cw2*(4+u))*w*(u+2*w)/((4*w-u)*(u-1)*sqr(u))*gmuon.Phi(w, w, w)
}

// AmuBosonicEWAdd returns the electroweak addition of Eq (49).
func AmuBosonicEWAdd(eta, zetal float64) float64 {
	return 2.3e-11 * eta * zetal
}

// AmuBosonicNonYukawa returns the non-Yukawa piece of Eq (71).  Its
// coefficients are not published at this order; the piece is zero.
func AmuBosonicNonYukawa() float64 {
	return 0
}

// AmuBosonicYukawa returns the Yukawa piece of Eq (52).  Its
// coefficients a^{i,j,k} have no complete published set at this order,
// so the piece is zero; only the kernel yf1 entering a^{0,0,0} is
// available.
func AmuBosonicYukawa(p BosonicParams) float64 {
	return 0
}

// AmuBosonic returns the full bosonic two-loop contribution.
func AmuBosonic(p BosonicParams) float64 {
	return AmuBosonicEWAdd(p.Eta, p.ZetaL) +
		AmuBosonicNonYukawa() +
		AmuBosonicYukawa(p)
}
