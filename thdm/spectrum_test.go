package thdm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/qedlab/gmuon"
)

// parameter point where the choice of range
// -pi/2 <= beta - alpha_h <= pi/2 matters
func treeLevelPoint() GaugeBasis {
	return GaugeBasis{
		Lambda1: 0.26249,
		Lambda2: 0.23993,
		Lambda3: 2.09923,
		Lambda4: -1.27781,
		Lambda5: -0.71038,
		TanBeta: 3.0,
		M122:    200.0 * 200.0,
		Type:    TypeII,
	}
}

func TestTreeLevelSpectrum(t *testing.T) {
	sm := DefaultSM()
	b := treeLevelPoint()

	sp, err := NewSpectrum(sm, b)
	require.NoError(t, err)

	v2 := sm.VSqr()
	tb := b.TanBeta
	sb := tb / math.Sqrt(1+sqr(tb))
	cb := 1 / math.Sqrt(1+sqr(tb))
	sb2, cb2 := sqr(sb), sqr(cb)

	// CP-odd and charged Higgs closed forms
	mA2 := b.M122/(sb*cb) - 0.5*v2*(2*b.Lambda5+b.Lambda6/tb+b.Lambda7*tb)
	mHp2 := mA2 + 0.5*v2*(b.Lambda5-b.Lambda4)
	require.InEpsilon(t, math.Sqrt(mA2), sp.MA, 1e-14)
	require.InEpsilon(t, math.Sqrt(mHp2), sp.MHp, 1e-14)

	// CP-even masses against an independent eigensolver
	m112 := mA2*sb2 + v2*(b.Lambda1*cb2+2*b.Lambda6*sb*cb+b.Lambda5*sb2)
	m122 := -mA2*sb*cb + v2*((b.Lambda3+b.Lambda4)*sb*cb+b.Lambda6*cb2+b.Lambda7*sb2)
	m222 := mA2*cb2 + v2*(b.Lambda2*sb2+2*b.Lambda7*sb*cb+b.Lambda5*cb2)

	var eig mat.EigenSym
	ok := eig.Factorize(mat.NewSymDense(2, []float64{m112, m122, m122, m222}), false)
	require.True(t, ok)
	ev := eig.Values(nil)

	require.InEpsilon(t, math.Sqrt(ev[0]), sp.Mh, 1e-12)
	require.InEpsilon(t, math.Sqrt(ev[1]), sp.MH, 1e-12)
	require.LessOrEqual(t, sp.Mh, sp.MH)

	// angle bookkeeping
	require.InDelta(t, 0.5*pi-(sp.Beta-sp.AlphaH), sp.Eta, 1e-14)
	require.InDelta(t, math.Sin(sp.Beta-sp.AlphaH), sp.SinBMA, 1e-14)
	require.InDelta(t, math.Cos(sp.Beta-sp.AlphaH), sp.CosBMA, 1e-14)
}

func TestSpectrumRejectsUnphysicalPoint(t *testing.T) {
	sm := DefaultSM()

	b := treeLevelPoint()
	b.TanBeta = 0
	_, err := NewSpectrum(sm, b)
	require.Error(t, err)

	b = treeLevelPoint()
	b.M122 = -1e6 // drives mA^2 negative
	_, err = NewSpectrum(sm, b)
	require.Error(t, err)
	require.True(t, gmuon.IsConfigError(err))
}

func TestPhysicalBasisRoundTrip(t *testing.T) {
	sm := DefaultSM()
	p := PhysicalBasis{
		Mh:                125,
		MH:                400,
		MA:                420,
		MHp:               440,
		SinBetaMinusAlpha: 0.999,
		Lambda6:           0.1,
		Lambda7:           0.2,
		TanBeta:           3,
		M122:              4000,
		Type:              TypeII,
	}

	b, err := p.ToGauge(sm)
	require.NoError(t, err)

	sp, err := NewSpectrum(sm, b)
	require.NoError(t, err)

	require.InEpsilon(t, p.Mh, sp.Mh, 1e-10)
	require.InEpsilon(t, p.MH, sp.MH, 1e-10)
	require.InEpsilon(t, p.MA, sp.MA, 1e-10)
	require.InEpsilon(t, p.MHp, sp.MHp, 1e-10)
}

func TestPhysicalBasisRejectsBadInputs(t *testing.T) {
	sm := DefaultSM()

	p := PhysicalBasis{TanBeta: -1}
	_, err := p.ToGauge(sm)
	require.Error(t, err)

	p = PhysicalBasis{TanBeta: 3, SinBetaMinusAlpha: 1.5}
	_, err = p.ToGauge(sm)
	require.Error(t, err)
}

func TestGaugeBasisString(t *testing.T) {
	s := treeLevelPoint().String()
	require.Contains(t, s, "lambda1 = 0.26249")
	require.Contains(t, s, "tan(beta) = 3")
	require.Contains(t, s, "type II")
}
