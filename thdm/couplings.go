// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thdm

import "gonum.org/v1/gonum/mat"

const sqrt2 = 1.4142135623730950

// Couplings holds the effective scalar Yukawa couplings of Eq.(18),
// arXiv:1607.06292.  Each matrix is 3x4: one row per generation, one
// column per scalar in the order h, H, A, H±.  The couplings are
// generation-independent at tree level, so the rows repeat; the matrix
// form keeps the generation sums of the two-loop assembly uniform.
type Couplings struct {
	YuS *mat.Dense // up-type quarks
	YdS *mat.Dense // down-type quarks
	YlS *mat.Dense // charged leptons
}

// scalar column indices of the coupling matrices
const (
	colh = iota
	colH
	colA
	colHp
)

// NewCouplings builds the coupling matrices from the mixing angles and
// the alignment parameters of the point.
func NewCouplings(sp Spectrum, b GaugeBasis) Couplings {
	zu, zd, zl := b.Zetas()
	sba, cba := sp.SinBMA, sp.CosBMA

	fill := func(zeta, signA float64) *mat.Dense {
		m := mat.NewDense(3, 4, nil)
		for i := 0; i < 3; i++ {
			m.Set(i, colh, sba+cba*zeta)
			m.Set(i, colH, cba-sba*zeta)
			m.Set(i, colA, signA*zeta)
			m.Set(i, colHp, sqrt2*signA*zeta)
		}
		return m
	}

	return Couplings{
		YuS: fill(zu, +1),
		YdS: fill(zd, -1),
		YlS: fill(zl, -1),
	}
}
