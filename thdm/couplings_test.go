package thdm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZetas(t *testing.T) {
	b := GaugeBasis{TanBeta: 3}
	ctb := 1.0 / 3.0

	for _, tc := range []struct {
		typ        YukawaType
		zu, zd, zl float64
	}{
		{TypeI, ctb, ctb, ctb},
		{TypeII, ctb, -3, -3},
		{TypeX, ctb, ctb, -3},
		{TypeY, ctb, -3, ctb},
	} {
		b.Type = tc.typ
		zu, zd, zl := b.Zetas()
		require.InDelta(t, tc.zu, zu, 1e-15, "%v zeta_u", tc.typ)
		require.InDelta(t, tc.zd, zd, 1e-15, "%v zeta_d", tc.typ)
		require.InDelta(t, tc.zl, zl, 1e-15, "%v zeta_l", tc.typ)
	}

	b.Type = TypeAligned
	b.ZetaU, b.ZetaD, b.ZetaL = 0.1, 0.2, 0.3
	zu, zd, zl := b.Zetas()
	require.Equal(t, 0.1, zu)
	require.Equal(t, 0.2, zd)
	require.Equal(t, 0.3, zl)
}

func TestCouplingColumns(t *testing.T) {
	sp := Spectrum{SinBMA: 0.8, CosBMA: 0.6}
	b := GaugeBasis{
		TanBeta: 1,
		Type:    TypeAligned,
		ZetaU:   0.1, ZetaD: 0.2, ZetaL: 0.3,
	}

	c := NewCouplings(sp, b)

	for i := 0; i < 3; i++ {
		// up-type: A column carries +zeta_u
		require.InDelta(t, 0.8+0.6*0.1, c.YuS.At(i, colh), 1e-15)
		require.InDelta(t, 0.6-0.8*0.1, c.YuS.At(i, colH), 1e-15)
		require.InDelta(t, 0.1, c.YuS.At(i, colA), 1e-15)
		require.InDelta(t, sqrt2*0.1, c.YuS.At(i, colHp), 1e-15)

		// down-type and leptons flip the sign of the A column
		require.InDelta(t, -0.2, c.YdS.At(i, colA), 1e-15)
		require.InDelta(t, -0.3, c.YlS.At(i, colA), 1e-15)
		require.InDelta(t, -sqrt2*0.3, c.YlS.At(i, colHp), 1e-15)
	}
}

func TestCouplingsDecouplingLimit(t *testing.T) {
	// sin(beta-alpha) = 1 with vanishing alignment parameters gives SM
	// couplings for h and none for H, A, H±
	sp := Spectrum{SinBMA: 1, CosBMA: 0}
	b := GaugeBasis{TanBeta: 2, Type: TypeAligned}

	c := NewCouplings(sp, b)
	for i := 0; i < 3; i++ {
		require.Equal(t, 1.0, c.YlS.At(i, colh))
		require.Equal(t, 0.0, c.YlS.At(i, colH))
		require.Equal(t, 0.0, c.YlS.At(i, colA))
		require.Equal(t, 0.0, c.YlS.At(i, colHp))
	}
}
