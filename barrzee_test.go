package gmuon

import (
	"math"
	"testing"
)

func TestBarrZeeBranchPoints(t *testing.T) {
	if got := FPS(0.25); got != ln4 {
		t.Errorf("FPS(1/4) = %v, want log 4", got)
	}
	if got := F1(0.25); got != -0.5 {
		t.Errorf("F1(1/4) = %v, want -1/2", got)
	}
	if got := F2(0.25); got != 1-ln4 {
		t.Errorf("F2(1/4) = %v, want 1 - log 4", got)
	}
	if got := F3(0.25); got != 19.0/4.0 {
		t.Errorf("F3(1/4) = %v, want 19/4", got)
	}

	for _, tc := range []struct {
		name string
		f    func(float64) float64
	}{
		{"FPS", FPS}, {"FS", FS}, {"FSferm", FSferm}, {"F1", F1},
	} {
		if got := tc.f(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", tc.name, got)
		}
	}
}

// TestBarrZeeThresholdContinuity checks that the real branch below
// z = 1/4, the exact value at 1/4 and the complex branch above it join
// smoothly.
func TestBarrZeeThresholdContinuity(t *testing.T) {
	tests := []struct {
		name string
		f    func(float64) float64
		at   float64
	}{
		{"FPS", FPS, ln4},
		{"F1", F1, -0.5},
		{"F2", F2, 1 - ln4},
		{"F3", F3, 19.0 / 4.0},
	}
	for _, tc := range tests {
		lo := tc.f(0.2499)
		hi := tc.f(0.2501)
		if !almostEqual(lo, tc.at, 1e-2) || !almostEqual(hi, tc.at, 1e-2) {
			t.Errorf("%s near threshold: f(0.2499) = %v, f(0.2501) = %v, branch point %v",
				tc.name, lo, hi, tc.at)
		}
	}
}

func TestBarrZeeImaginaryCancellation(t *testing.T) {
	// above threshold the kernels are evaluated through complex
	// intermediates whose imaginary parts cancel analytically; the
	// numerical residue must be at rounding level
	for _, tc := range []struct {
		name string
		im   float64
	}{
		{"fpsC", imag(fpsC(0.3))},
		{"fpsC", imag(fpsC(2))},
		{"f1C", imag(f1C(0.5))},
		{"f2C", imag(f2C(0.5))},
		{"f3C", imag(f3C(0.5))},
	} {
		if math.Abs(tc.im) > 1e-8 {
			t.Errorf("%s imaginary residue %v", tc.name, tc.im)
		}
	}
}

func TestFPSSmallArgument(t *testing.T) {
	// f_PS(z) → z (log²z + π²/3) as z → 0
	z := 1e-6
	want := z * (sqr(math.Log(z)) + piSqr/3)
	if got := FPS(z); !almostEqual(got, want, 1e-3) {
		t.Errorf("FPS(%v) = %v, want asymptote %v", z, got, want)
	}
}

func TestF1tHalvesFPS(t *testing.T) {
	for _, w := range []float64{0.1, 0.25, 0.5, 3} {
		if got, want := F1t(w), 0.5*FPS(w); got != want {
			t.Errorf("F1t(%v) = %v, want %v", w, got, want)
		}
	}
}

func TestFSRelation(t *testing.T) {
	// scalar and sfermion kernels at a generic point, cross-checked
	// through their defining combinations with f_PS
	z := 0.7
	fps := FPS(z)
	if got, want := FS(z), (2*z-1)*fps-2*z*(2+math.Log(z)); !almostEqual(got, want, 1e-14) {
		t.Errorf("FS(%v) = %v, want %v", z, got, want)
	}
	if got, want := FSferm(z), 0.5*z*(2+math.Log(z)-fps); !almostEqual(got, want, 1e-14) {
		t.Errorf("FSferm(%v) = %v, want %v", z, got, want)
	}
}

func TestBarrZeeDomain(t *testing.T) {
	for _, tc := range []struct {
		name string
		f    func(float64) float64
	}{
		{"FPS", FPS}, {"FS", FS}, {"FSferm", FSferm},
		{"F1", F1}, {"F2", F2}, {"F3", F3},
	} {
		if got := tc.f(-1); !math.IsNaN(got) {
			t.Errorf("%s(-1) = %v, want NaN", tc.name, got)
		}
	}
}
