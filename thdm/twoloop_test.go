package thdm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// 2HDMC demo point of arXiv:1607.06292 era tooling
func demoPoint() GaugeBasis {
	return GaugeBasis{
		Lambda1: 4.81665,
		Lambda2: 0.23993,
		Lambda3: 2.09923,
		Lambda4: -1.27781,
		Lambda5: -0.71038,
		TanBeta: 3.0,
		M122:    200.0 * 200.0,
		Type:    TypeII,
	}
}

func TestAmuFermionicAlignmentLimit(t *testing.T) {
	// with sin(beta-alpha) = 1, vanishing alignment parameters and the
	// light Higgs degenerate with the SM Higgs, every h term cancels
	// against the SM subtraction and every other scalar decouples
	sm := DefaultSM()
	sp := Spectrum{
		Mh:     sm.MhSM,
		MH:     300,
		MA:     310,
		MHp:    320,
		SinBMA: 1,
		CosBMA: 0,
	}
	b := GaugeBasis{TanBeta: 2, Type: TypeAligned}

	p := NewFermionicParams(sm, sp, NewCouplings(sp, b))
	amu := AmuFermionic(p)
	require.Less(t, math.Abs(amu), 1e-20)
}

func TestAmuFermionicDemoPoint(t *testing.T) {
	m, err := NewModel(DefaultSM(), demoPoint())
	require.NoError(t, err)

	amu := m.Amu2LoopFermionic()
	require.False(t, math.IsNaN(amu))
	require.False(t, math.IsInf(amu, 0))

	// two-loop Barr-Zee contributions sit many orders below the muon
	// anomaly itself
	require.Greater(t, math.Abs(amu), 1e-18)
	require.Less(t, math.Abs(amu), 1e-6)
}

func TestAmuFermionicScalesWithCouplings(t *testing.T) {
	// doubling every alignment parameter at sin(beta-alpha) = 1 scales
	// the A and H± terms quadratically in the muon coupling and leaves
	// the SM-subtracted h terms unchanged; the result must change
	sm := DefaultSM()
	sp := Spectrum{Mh: sm.MhSM, MH: 300, MA: 310, MHp: 320, SinBMA: 1, CosBMA: 0}

	small := GaugeBasis{TanBeta: 2, Type: TypeAligned, ZetaU: 0.1, ZetaD: 0.1, ZetaL: 0.1}
	large := small
	large.ZetaU, large.ZetaD, large.ZetaL = 0.2, 0.2, 0.2

	a1 := AmuFermionic(NewFermionicParams(sm, sp, NewCouplings(sp, small)))
	a2 := AmuFermionic(NewFermionicParams(sm, sp, NewCouplings(sp, large)))
	require.NotEqual(t, a1, a2)
}

func TestAmuBosonicEWAdd(t *testing.T) {
	require.InDelta(t, 2.3e-11*2*3, AmuBosonicEWAdd(2, 3), 1e-25)
	require.Equal(t, 0.0, AmuBosonicEWAdd(0, 5))
	require.Equal(t, 0.0, AmuBosonicEWAdd(5, 0))
}

func TestAmuBosonicNonYukawa(t *testing.T) {
	require.Equal(t, 0.0, AmuBosonicNonYukawa())
}

func TestAmuBosonicYukawaZero(t *testing.T) {
	// the Yukawa coefficients are unpublished at this order; the piece
	// must contribute nothing rather than an unnormalized estimate
	sm := DefaultSM()
	p := BosonicParams{
		AlphaEM: sm.AlphaEM,
		MM:      sm.MMuon(),
		MW:      sm.MW,
		MZ:      sm.MZ,
		MhSM:    sm.MhSM,
		MHp:     440,
		TanBeta: 3,
		ZetaL:   -3,
		Lambda5: -0.71038,
		Eta:     0.1,
	}
	require.Equal(t, 0.0, AmuBosonicYukawa(p))
}

func TestYukawaKernelFinite(t *testing.T) {
	// kernel of Eq (102) at a typical point, kept for the eventual
	// coefficient assembly
	sm := DefaultSM()
	mz2 := sqr(sm.MZ)
	u := sqr(sm.MhSM) / mz2
	w := sqr(440.0) / mz2
	cw2 := sm.CW2()

	v := yf1(u, w, cw2)
	require.False(t, math.IsNaN(v))
	require.False(t, math.IsInf(v, 0))
	require.NotZero(t, v)
}

func TestAmu2LoopDemoPointMagnitude(t *testing.T) {
	// the full two-loop value at the demo point must stay at the size
	// of a two-loop electroweak correction; the bosonic pieces must not
	// dominate the fermionic Barr-Zee contribution by orders of
	// magnitude
	m, err := NewModel(DefaultSM(), demoPoint())
	require.NoError(t, err)

	amu := m.Amu2Loop()
	require.False(t, math.IsNaN(amu))
	require.Greater(t, math.Abs(amu), 1e-14)
	require.Less(t, math.Abs(amu), 1e-8)

	bos := m.Amu2LoopBosonic()
	ferm := m.Amu2LoopFermionic()
	require.Less(t, math.Abs(bos), math.Abs(ferm))
}

func TestAmu2LoopCombines(t *testing.T) {
	m, err := NewModel(DefaultSM(), demoPoint())
	require.NoError(t, err)

	sum := m.Amu2LoopFermionic() + m.Amu2LoopBosonic()
	require.True(t, scalar.EqualWithinAbsOrRel(sum, m.Amu2Loop(), 1e-25, 1e-12))
}
