package gmuon

import (
	"math"
	"testing"
)

func TestIsZero(t *testing.T) {
	if !IsZero(0, 1e-15) {
		t.Error("IsZero(0) must hold")
	}
	if !IsZero(1e-16, 1e-15) {
		t.Error("IsZero(1e-16, 1e-15) must hold")
	}
	if IsZero(1e-14, 1e-15) {
		t.Error("IsZero(1e-14, 1e-15) must not hold")
	}
	if IsZero(math.NaN(), 1e-15) {
		t.Error("IsZero(NaN) must not hold")
	}
}

func TestIsEqualRelativeScaling(t *testing.T) {
	// near zero the test is absolute
	if !IsEqual(0, 5e-16, 1e-15) {
		t.Error("IsEqual must be absolute near zero")
	}

	// for large magnitudes the band scales with the values: the
	// acceptance width at magnitude 1e10 is prec*(1+1e10)
	if !IsEqual(1e10, 1e10+1, 1e-9) {
		t.Error("IsEqual must scale relatively for large magnitudes")
	}
	if IsEqual(1e10, 1e10+100, 1e-9) {
		t.Error("IsEqual accepted a difference outside the scaled band")
	}

	// symmetry
	if IsEqual(1.0, 1.5, 0.01) != IsEqual(1.5, 1.0, 0.01) {
		t.Error("IsEqual must be symmetric")
	}
}

func TestSort3(t *testing.T) {
	perms := [][3]float64{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}
	for _, p := range perms {
		x, y, z := sort3(p[0], p[1], p[2])
		if x != 1 || y != 2 || z != 3 {
			t.Errorf("sort3(%v) = (%v,%v,%v)", p, x, y, z)
		}
	}

	// ties
	x, y, z := sort3(2, 2, 1)
	if x != 1 || y != 2 || z != 2 {
		t.Errorf("sort3(2,2,1) = (%v,%v,%v)", x, y, z)
	}
}

func TestClassifyPairOrder(t *testing.T) {
	// the checks run in a fixed order (zero, both-one, one, equal,
	// generic) so overlapping inputs resolve deterministically
	tests := []struct {
		x, y float64
		want region
	}{
		{0, 1, regionNearZero},
		{1, 1e-20, regionNearZero},
		{1, 1, regionNearBoth},
		{1.0005, 0.9995, regionNearBoth},
		{1, 2, regionNearOne},
		{2, 1.0005, regionNearOne},
		{2, 2.001, regionNearEqual},
		{2, 3, regionGeneric},
	}
	for _, tc := range tests {
		if got := classifyPair(tc.x, tc.y, 0.01, epsZero); got != tc.want {
			t.Errorf("classifyPair(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}

	// zeroTol = 0 disables the zero region
	if got := classifyPair(0, 2, 0.01, 0); got != regionGeneric {
		t.Errorf("classifyPair with zeroTol=0 classified %v", got)
	}
}

func TestRegionString(t *testing.T) {
	for r, want := range map[region]string{
		regionGeneric:   "generic",
		regionNearZero:  "near-zero",
		regionNearBoth:  "near-both-one",
		regionNearOne:   "near-one",
		regionNearEqual: "near-equal",
		region(99):      "unknown",
	} {
		if got := r.String(); got != want {
			t.Errorf("region(%d).String() = %q, want %q", int(r), got, want)
		}
	}
}
