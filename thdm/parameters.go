// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thdm

import (
	"fmt"
	"math"
	"strings"

	"github.com/qedlab/gmuon"
)

// YukawaType selects how the two doublets couple to the fermion sectors.
// The discrete types fix the alignment parameters ζ_u, ζ_d, ζ_l in terms
// of tan β; TypeAligned takes them as free inputs.
type YukawaType int

const (
	TypeI YukawaType = iota + 1
	TypeII
	TypeX
	TypeY
	TypeAligned
)

func (t YukawaType) String() string {
	switch t {
	case TypeI:
		return "type I"
	case TypeII:
		return "type II"
	case TypeX:
		return "type X"
	case TypeY:
		return "type Y"
	case TypeAligned:
		return "aligned"
	default:
		return "unknown"
	}
}

// GaugeBasis holds a parameter point in the gauge (Lagrangian) basis:
// the scalar-potential couplings λ1..λ7, tan β and the soft Z2-breaking
// mass m12².
type GaugeBasis struct {
	Lambda1 float64
	Lambda2 float64
	Lambda3 float64
	Lambda4 float64
	Lambda5 float64
	Lambda6 float64
	Lambda7 float64
	TanBeta float64
	M122    float64 // m12² in GeV²

	Type YukawaType

	// alignment parameters, read only for TypeAligned
	ZetaU float64
	ZetaD float64
	ZetaL float64
}

// Zetas returns the alignment parameters (ζ_u, ζ_d, ζ_l) implied by the
// Yukawa type.
func (b GaugeBasis) Zetas() (zu, zd, zl float64) {
	ctb := 1 / b.TanBeta
	switch b.Type {
	case TypeII:
		return ctb, -b.TanBeta, -b.TanBeta
	case TypeX:
		return ctb, ctb, -b.TanBeta
	case TypeY:
		return ctb, -b.TanBeta, ctb
	case TypeAligned:
		return b.ZetaU, b.ZetaD, b.ZetaL
	}
	// TypeI and unset default
	return ctb, ctb, ctb
}

// Validate reports the first unphysical input, if any.
func (b GaugeBasis) Validate() error {
	if b.TanBeta <= 0 {
		return gmuon.NewInvalidArgError("GaugeBasis",
			fmt.Sprintf("tan(beta) must be positive, got %g", b.TanBeta))
	}
	return nil
}

// String renders the parameter point, one coupling per line.
func (b GaugeBasis) String() string {
	var sb strings.Builder
	sb.WriteString("----------------------------------------\n")
	sb.WriteString("Parameters:\n")
	sb.WriteString("----------------------------------------\n")
	fmt.Fprintf(&sb, "lambda1 = %g\n", b.Lambda1)
	fmt.Fprintf(&sb, "lambda2 = %g\n", b.Lambda2)
	fmt.Fprintf(&sb, "lambda3 = %g\n", b.Lambda3)
	fmt.Fprintf(&sb, "lambda4 = %g\n", b.Lambda4)
	fmt.Fprintf(&sb, "lambda5 = %g\n", b.Lambda5)
	fmt.Fprintf(&sb, "lambda6 = %g\n", b.Lambda6)
	fmt.Fprintf(&sb, "lambda7 = %g\n", b.Lambda7)
	fmt.Fprintf(&sb, "tan(beta) = %g\n", b.TanBeta)
	fmt.Fprintf(&sb, "m12^2 = %g GeV^2\n", b.M122)
	fmt.Fprintf(&sb, "Yukawa type: %v\n", b.Type)
	return sb.String()
}

// PhysicalBasis holds a parameter point in the physical (mass) basis.
type PhysicalBasis struct {
	Mh                float64 // lighter CP-even Higgs mass
	MH                float64 // heavier CP-even Higgs mass
	MA                float64 // CP-odd Higgs mass
	MHp               float64 // charged Higgs mass
	SinBetaMinusAlpha float64
	Lambda6           float64
	Lambda7           float64
	TanBeta           float64
	M122              float64

	Type  YukawaType
	ZetaU float64
	ZetaD float64
	ZetaL float64
}

// ToGauge converts the physical basis into the gauge basis, inverting
// the tree-level mass relations at fixed λ6, λ7.
func (p PhysicalBasis) ToGauge(sm SM) (GaugeBasis, error) {
	if p.TanBeta <= 0 {
		return GaugeBasis{}, gmuon.NewInvalidArgError("PhysicalBasis",
			fmt.Sprintf("tan(beta) must be positive, got %g", p.TanBeta))
	}
	if s := p.SinBetaMinusAlpha; s < -1 || s > 1 {
		return GaugeBasis{}, gmuon.NewInvalidArgError("PhysicalBasis",
			fmt.Sprintf("sin(beta-alpha) must lie in [-1, 1], got %g", s))
	}

	v2 := sm.VSqr()
	tb := p.TanBeta
	sb := tb / math.Sqrt(1+sqr(tb))
	cb := 1 / math.Sqrt(1+sqr(tb))
	sb2, cb2 := sqr(sb), sqr(cb)

	mh2 := sqr(p.Mh)
	mH2 := sqr(p.MH)
	mA2 := sqr(p.MA)
	mHp2 := sqr(p.MHp)

	// beta - alpha_h in [-pi/2, pi/2], matching the spectrum convention
	bma := math.Asin(p.SinBetaMinusAlpha)
	beta := math.Atan(tb)
	alpha := beta - bma
	sa, ca := math.Sincos(alpha)

	// CP-even mass matrix reconstructed from masses and mixing angle
	m112 := mH2*sqr(ca) + mh2*sqr(sa)
	m122 := (mH2 - mh2) * sa * ca
	m222 := mH2*sqr(sa) + mh2*sqr(ca)

	l5 := (p.M122/(sb*cb)-mA2)/v2 - 0.5*(p.Lambda6/tb+p.Lambda7*tb)
	l4 := l5 - 2*(mHp2-mA2)/v2
	l1 := (m112 - mA2*sb2 - v2*(l5*sb2+2*p.Lambda6*sb*cb)) / (v2 * cb2)
	l2 := (m222 - mA2*cb2 - v2*(l5*cb2+2*p.Lambda7*sb*cb)) / (v2 * sb2)
	l34 := (m122 + mA2*sb*cb - v2*(p.Lambda6*cb2+p.Lambda7*sb2)) / (v2 * sb * cb)
	l3 := l34 - l4

	return GaugeBasis{
		Lambda1: l1,
		Lambda2: l2,
		Lambda3: l3,
		Lambda4: l4,
		Lambda5: l5,
		Lambda6: p.Lambda6,
		Lambda7: p.Lambda7,
		TanBeta: p.TanBeta,
		M122:    p.M122,
		Type:    p.Type,
		ZetaU:   p.ZetaU,
		ZetaD:   p.ZetaD,
		ZetaL:   p.ZetaL,
	}, nil
}
