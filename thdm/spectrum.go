// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thdm

import (
	"fmt"
	"math"

	"github.com/qedlab/gmuon"
)

// Spectrum is the tree-level Higgs spectrum of a parameter point,
// together with the mixing angles entering the couplings.
type Spectrum struct {
	Mh  float64 // lighter CP-even Higgs mass
	MH  float64 // heavier CP-even Higgs mass
	MA  float64 // CP-odd Higgs mass
	MHp float64 // charged Higgs mass

	Beta   float64 // atan(tan beta)
	AlphaH float64 // CP-even mixing angle
	Eta    float64 // pi/2 - (beta - alpha_h)

	SinBMA float64 // sin(beta - alpha_h)
	CosBMA float64 // cos(beta - alpha_h)
}

// NewSpectrum computes the tree-level spectrum from a gauge-basis point.
// The mass relations are those of the general scalar potential; a point
// with a negative squared mass is rejected with a configuration error.
func NewSpectrum(sm SM, b GaugeBasis) (Spectrum, error) {
	if err := b.Validate(); err != nil {
		return Spectrum{}, err
	}

	v2 := sm.VSqr()
	tb := b.TanBeta
	ctb := 1 / tb
	sb := tb / math.Sqrt(1+sqr(tb))
	cb := 1 / math.Sqrt(1+sqr(tb))
	sb2, cb2 := sqr(sb), sqr(cb)
	s2b := 2 * sb * cb
	c2b := cb2 - sb2
	s3b := 3*sb - 4*sb*sb2
	c3b := 4*cb*cb2 - 3*cb

	l1, l2, l3 := b.Lambda1, b.Lambda2, b.Lambda3
	l4, l5, l6, l7 := b.Lambda4, b.Lambda5, b.Lambda6, b.Lambda7

	// CP-odd Higgs boson
	mA2 := b.M122/(sb*cb) - 0.5*v2*(2*l5+l6*ctb+l7*tb)
	if mA2 < 0 {
		return Spectrum{}, gmuon.NewConfigError("Spectrum",
			fmt.Sprintf("mA^2 = %g GeV^2 is negative", mA2), nil)
	}

	// charged Higgs boson
	mHp2 := mA2 + 0.5*v2*(l5-l4)
	if mHp2 < 0 {
		return Spectrum{}, gmuon.NewConfigError("Spectrum",
			fmt.Sprintf("mH+^2 = %g GeV^2 is negative", mHp2), nil)
	}

	// CP-even mass matrix
	m112 := mA2*sb2 + v2*(l1*cb2+2*l6*sb*cb+l5*sb2)
	m122 := -mA2*sb*cb + v2*((l3+l4)*sb*cb+l6*cb2+l7*sb2)
	m222 := mA2*cb2 + v2*(l2*sb2+2*l7*sb*cb+l5*cb2)
	disc := math.Sqrt(sqr(m112-m222) + 4*sqr(m122))
	mh2 := 0.5 * (m112 + m222 - disc)
	mH2 := 0.5 * (m112 + m222 + disc)
	if mh2 < 0 {
		return Spectrum{}, gmuon.NewConfigError("Spectrum",
			fmt.Sprintf("mh^2 = %g GeV^2 is negative", mh2), nil)
	}

	// CP-even mixing angle, with beta - alpha_h kept in [-pi/2, pi/2]
	l345 := l3 + l4 + l5
	lhat := 0.5*s2b*(l1*cb2-l2*sb2-l345*c2b) - l6*cb*c3b - l7*sb*s3b
	lA := c2b*(l1*cb2-l2*sb2) + l345*s2b*s2b - l5 + 2*l6*cb*s3b - 2*l7*sb*c3b
	bma := 0.5 * math.Atan2(2*lhat*v2, -(mA2 - lA*v2))
	beta := math.Atan(tb)
	sbma, cbma := math.Sincos(bma)

	return Spectrum{
		Mh:     math.Sqrt(mh2),
		MH:     math.Sqrt(mH2),
		MA:     math.Sqrt(mA2),
		MHp:    math.Sqrt(mHp2),
		Beta:   beta,
		AlphaH: beta - bma,
		Eta:    0.5*pi - bma,
		SinBMA: sbma,
		CosBMA: cbma,
	}, nil
}
