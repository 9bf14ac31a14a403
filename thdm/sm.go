// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thdm

const pi = 3.1415926535897932385

// SM collects the Standard Model inputs the model layer depends on.
// Masses are pole masses in GeV; AlphaEM is the electromagnetic coupling
// at the Z scale.
type SM struct {
	AlphaEM float64    // alpha_em(MZ)
	MW      float64    // W boson mass
	MZ      float64    // Z boson mass
	MhSM    float64    // SM Higgs boson mass
	ML      [3]float64 // charged lepton masses (e, mu, tau)
	MU      [3]float64 // up-type quark masses (u, c, t)
	MD      [3]float64 // down-type quark masses (d, s, b)
}

// DefaultSM returns the default input point.
func DefaultSM() SM {
	return SM{
		AlphaEM: 1.0 / 128.94579,
		MW:      80.385,
		MZ:      91.1876,
		MhSM:    125.09,
		ML:      [3]float64{5.10998946e-4, 0.1056583715, 1.77684},
		MU:      [3]float64{0.0022, 1.28, 173.34},
		MD:      [3]float64{0.0047, 0.095, 4.18},
	}
}

// CW2 returns the squared cosine of the weak mixing angle, mW²/mZ².
func (s SM) CW2() float64 { return sqr(s.MW / s.MZ) }

// SW2 returns the squared sine of the weak mixing angle.
func (s SM) SW2() float64 { return 1 - s.CW2() }

// VSqr returns the squared Higgs vacuum expectation value (2mW/g2)²
// with g2 fixed from AlphaEM and the weak mixing angle.
func (s SM) VSqr() float64 {
	return sqr(s.MW) * s.SW2() / (pi * s.AlphaEM)
}

// MMuon returns the muon mass.
func (s SM) MMuon() float64 { return s.ML[1] }

func sqr(x float64) float64 { return x * x }
