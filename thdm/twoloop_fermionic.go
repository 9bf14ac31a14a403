// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thdm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/qedlab/gmuon"
)

// Two-loop fermionic Barr-Zee contributions, Eqs (53)-(63) of
// arXiv:1607.06292.  A neutral scalar S = h, H, A couples to a closed
// fermion loop through the photon and Z pieces; the charged Higgs
// couples through mixed up/down loops.  Every term carries the product
// of the loop-fermion and muon Yukawa couplings of the scalar.

// electromagnetic and SU(2)_L charges of the loop fermions
const (
	qU = 2.0 / 3.0
	qD = -1.0 / 3.0
	qL = -1.0

	t3U = +1.0
	t3D = -1.0
	t3L = -1.0
)

// muonRow is the generation index of the muon in the coupling matrices.
const muonRow = 1

// FermionicParams carries the inputs of the fermionic two-loop assembly.
type FermionicParams struct {
	AlphaEM float64
	MM      float64 // muon mass
	MW      float64
	MZ      float64
	MhSM    float64 // SM Higgs mass, subtracted

	Mh  float64
	MH  float64
	MA  float64
	MHp float64

	ML [3]float64
	MU [3]float64
	MD [3]float64

	YuS *mat.Dense
	YdS *mat.Dense
	YlS *mat.Dense
}

// NewFermionicParams assembles the two-loop fermionic inputs from the
// Standard Model point, the spectrum and the couplings.
func NewFermionicParams(sm SM, sp Spectrum, c Couplings) FermionicParams {
	return FermionicParams{
		AlphaEM: sm.AlphaEM,
		MM:      sm.MMuon(),
		MW:      sm.MW,
		MZ:      sm.MZ,
		MhSM:    sm.MhSM,
		Mh:      sp.Mh,
		MH:      sp.MH,
		MA:      sp.MA,
		MHp:     sp.MHp,
		ML:      sm.ML,
		MU:      sm.MU,
		MD:      sm.MD,
		YuS:     c.YuS,
		YdS:     c.YdS,
		YlS:     c.YlS,
	}
}

// neutPars describes one loop fermion in a neutral-scalar diagram.
type neutPars struct {
	mf2 float64 // squared loop-fermion mass
	qf  float64 // loop-fermion electric charge
	ql  float64 // muon electric charge
	t3f float64 // loop-fermion SU(2)_L charge
	t3l float64 // muon SU(2)_L charge
	nc  float64 // loop-fermion color multiplicity
}

// fS is the CP-even scalar kernel, Eq (56).
func fS(ms2, mf2 float64) float64 {
	return -2 + math.Log(ms2/mf2) -
		(ms2-2*mf2)/ms2*gmuon.Phi(ms2, mf2, mf2)/(ms2-4*mf2)
}

// fA is the CP-odd scalar kernel, Eq (57).
func fA(ms2, mf2 float64) float64 {
	return gmuon.Phi(ms2, mf2, mf2) / (ms2 - 4*mf2)
}

// fSgamma is the photon exchange piece, Eq (54).
func fSgamma(ms2 float64, f neutPars, p FermionicParams, k func(ms2, mf2 float64) float64) float64 {
	al2 := sqr(p.AlphaEM)
	mm2 := sqr(p.MM)
	mw2 := sqr(p.MW)
	mz2 := sqr(p.MZ)
	sw2 := 1 - mw2/mz2

	return al2 * mm2 / (4 * sqr(pi) * mw2 * sw2) * sqr(f.qf) * f.nc *
		f.mf2 / ms2 * k(ms2, f.mf2)
}

// fSZ is the Z exchange piece, Eq (55).
func fSZ(ms2 float64, f neutPars, p FermionicParams, k func(ms2, mf2 float64) float64) float64 {
	al2 := sqr(p.AlphaEM)
	mm2 := sqr(p.MM)
	mw2 := sqr(p.MW)
	mz2 := sqr(p.MZ)
	cw2 := mw2 / mz2
	sw2 := 1 - cw2
	gvf := 0.5*f.t3f - f.qf*sw2
	gvl := 0.5*f.t3l - f.ql*sw2

	return al2 * mm2 / (4 * sqr(pi) * mw2 * sw2) * (-f.nc * f.qf * gvl * gvf) / (sw2 * cw2) *
		f.mf2 / (ms2 - mz2) * (k(ms2, f.mf2) - k(mz2, f.mf2))
}

// ffS is the full neutral-scalar exchange, Eq (53).
func ffS(ms2 float64, f neutPars, p FermionicParams, k func(ms2, mf2 float64) float64) float64 {
	return fSgamma(ms2, f, p, k) + fSZ(ms2, f, p, k)
}

// kernelLHp is the charged-Higgs lepton-loop kernel, Eq (60).
func kernelLHp(ms2, mf2 float64) float64 {
	xl := mf2 / ms2

	return xl + xl*(xl-1)*(gmuon.Dilog(1-1/xl)-sqr(pi)/6) +
		(xl-0.5)*math.Log(xl)
}

// kernelDHp is the charged-Higgs down-quark kernel, Eq (61).
func kernelDHp(ms2, md2, mu2, qd, qu float64) float64 {
	xu := mu2 / ms2
	xd := md2 / ms2
	sqrtXu := math.Sqrt(xu)
	sqrtXd := math.Sqrt(xd)
	y := sqr(xu-xd) - 2*(xu+xd) + 1
	s := 0.25 * (qu + qd)
	c := sqr(xu-xd) - qu*xu + qd*xd
	cbar := (xu-qu)*xu - (xd+qd)*xd
	phi := gmuon.Phi(sqrtXd, sqrtXu, 1)

	return -(xu - xd) + (cbar/y-c*(xu-xd)/y)*phi +
		c*(gmuon.Dilog(1-xd/xu)-0.5*math.Log(xu)*math.Log(xd/xu)*phi) +
		(s+xd)*math.Log(xd) + (s-xu)*math.Log(xu)
}

// kernelUHp is the charged-Higgs up-quark kernel, Eq (62).
func kernelUHp(ms2, md2, mu2, qd, qu float64) float64 {
	xu := mu2 / ms2
	xd := md2 / ms2
	y := sqr(xu-xd) - 2*(xu+xd) + 1

	return kernelDHp(ms2, md2, mu2, 2+qd, 2+qu) -
		4.0/3.0*(xu-xd-1)/y*gmuon.Phi(math.Sqrt(xd), math.Sqrt(xu), 1) -
		1.0/3.0*(sqr(math.Log(xd))-sqr(math.Log(xu)))
}

// flHp is the charged-Higgs lepton-loop exchange, Eq (59) with f = l.
func flHp(ms2, mf2 float64, p FermionicParams) float64 {
	al2 := sqr(p.AlphaEM)
	mm2 := sqr(p.MM)
	mw2 := sqr(p.MW)
	mz2 := sqr(p.MZ)
	sw2 := 1 - mw2/mz2
	const nc = 1.0

	return al2 * mm2 / (32 * sqr(pi) * mw2 * sqr(sw2)) * nc * mf2 / (ms2 - mw2) *
		(kernelLHp(ms2, mf2) - kernelLHp(mw2, mf2))
}

// fuHp is the charged-Higgs up-quark exchange, Eq (59) with f = u.
func fuHp(ms2, md2, mu2 float64, p FermionicParams) float64 {
	al2 := sqr(p.AlphaEM)
	mm2 := sqr(p.MM)
	mw2 := sqr(p.MW)
	mz2 := sqr(p.MZ)
	sw2 := 1 - mw2/mz2
	const nc = 3.0

	return al2 * mm2 / (32 * sqr(pi) * mw2 * sqr(sw2)) * nc * mu2 / (ms2 - mw2) *
		(kernelUHp(ms2, md2, mu2, qD, qU) - kernelUHp(mw2, md2, mu2, qD, qU))
}

// fdHp is the charged-Higgs down-quark exchange, Eq (59) with f = d.
func fdHp(ms2, md2, mu2 float64, p FermionicParams) float64 {
	al2 := sqr(p.AlphaEM)
	mm2 := sqr(p.MM)
	mw2 := sqr(p.MW)
	mz2 := sqr(p.MZ)
	sw2 := 1 - mw2/mz2
	const nc = 3.0

	return al2 * mm2 / (32 * sqr(pi) * mw2 * sqr(sw2)) * nc * md2 / (ms2 - mw2) *
		(kernelDHp(ms2, md2, mu2, qD, qU) - kernelDHp(mw2, md2, mu2, qD, qU))
}

// AmuFermionic returns the fermionic two-loop Barr-Zee contribution,
// Eq (63).  The neutral scalars h, H and A run over all three fermion
// generations, the charged Higgs over the mixed loops, and the SM Higgs
// exchange is subtracted so only the deviation from the Standard Model
// remains.  The terms span many orders of magnitude, so they are
// collected and summed at the end.
func AmuFermionic(p FermionicParams) float64 {
	mh2 := sqr(p.Mh)
	mH2 := sqr(p.MH)
	mA2 := sqr(p.MA)
	mHp2 := sqr(p.MHp)
	mhSM2 := sqr(p.MhSM)

	ylh := p.YlS.At(muonRow, colh)
	ylH := p.YlS.At(muonRow, colH)
	ylA := p.YlS.At(muonRow, colA)

	terms := make([]float64, 0, 36)

	for i := 0; i < 3; i++ {
		fu := neutPars{mf2: sqr(p.MU[i]), qf: qU, ql: qL, t3f: t3U, t3l: t3L, nc: 3}
		fd := neutPars{mf2: sqr(p.MD[i]), qf: qD, ql: qL, t3f: t3D, t3l: t3L, nc: 3}
		fl := neutPars{mf2: sqr(p.ML[i]), qf: qL, ql: qL, t3f: t3L, t3l: t3L, nc: 1}

		// h
		terms = append(terms,
			ffS(mh2, fu, p, fS)*p.YuS.At(i, colh)*ylh,
			ffS(mh2, fd, p, fS)*p.YdS.At(i, colh)*ylh,
			ffS(mh2, fl, p, fS)*p.YlS.At(i, colh)*ylh,
		)

		// H
		terms = append(terms,
			ffS(mH2, fu, p, fS)*p.YuS.At(i, colH)*ylH,
			ffS(mH2, fd, p, fS)*p.YdS.At(i, colH)*ylH,
			ffS(mH2, fl, p, fS)*p.YlS.At(i, colH)*ylH,
		)

		// A
		terms = append(terms,
			ffS(mA2, fu, p, fA)*p.YuS.At(i, colA)*ylA,
			ffS(mA2, fd, p, fA)*p.YdS.At(i, colA)*ylA,
			ffS(mA2, fl, p, fA)*p.YlS.At(i, colA)*ylA,
		)

		// H±
		md2 := sqr(p.MD[i])
		mu2 := sqr(p.MU[i])
		ml2 := sqr(p.ML[i])
		terms = append(terms,
			fuHp(mHp2, md2, mu2, p)*p.YuS.At(i, colA)*ylA,
			fdHp(mHp2, md2, mu2, p)*p.YdS.At(i, colA)*ylA,
			flHp(mHp2, ml2, p)*p.YlS.At(i, colA)*ylA,
		)

		// SM Higgs subtraction
		terms = append(terms,
			-ffS(mhSM2, fu, p, fS),
			-ffS(mhSM2, fd, p, fS),
			-ffS(mhSM2, fl, p, fS),
		)
	}

	return floats.Sum(terms)
}
