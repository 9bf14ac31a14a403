// Copyright ©2025 The gmuon Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package thdm

// Model ties a Standard Model input point, a gauge-basis parameter
// point, and the derived spectrum and couplings together.
type Model struct {
	SM        SM
	Basis     GaugeBasis
	Spectrum  Spectrum
	Couplings Couplings
}

// NewModel builds a model from a gauge-basis point, computing the
// spectrum and couplings.  An unphysical point is rejected.
func NewModel(sm SM, b GaugeBasis) (*Model, error) {
	sp, err := NewSpectrum(sm, b)
	if err != nil {
		return nil, err
	}
	return &Model{
		SM:        sm,
		Basis:     b,
		Spectrum:  sp,
		Couplings: NewCouplings(sp, b),
	}, nil
}

// NewModelPhysical builds a model from a physical-basis point.
func NewModelPhysical(sm SM, p PhysicalBasis) (*Model, error) {
	b, err := p.ToGauge(sm)
	if err != nil {
		return nil, err
	}
	return NewModel(sm, b)
}

// Amu2Loop returns the full two-loop contribution to a_mu: the
// fermionic Barr-Zee piece plus the bosonic pieces.
func (m *Model) Amu2Loop() float64 {
	return m.Amu2LoopFermionic() + m.Amu2LoopBosonic()
}

// Amu2LoopFermionic returns the fermionic two-loop contribution.
func (m *Model) Amu2LoopFermionic() float64 {
	return AmuFermionic(NewFermionicParams(m.SM, m.Spectrum, m.Couplings))
}

// Amu2LoopBosonic returns the bosonic two-loop contribution.
func (m *Model) Amu2LoopBosonic() float64 {
	return AmuBosonic(NewBosonicParams(m.SM, m.Spectrum, m.Basis))
}
