package dataset

import (
	"math"
	"testing"
)

// TestSmoothDisabled verifies the passthrough when smoothing is off.
func TestSmoothDisabled(t *testing.T) {
	in := []float64{3, 1, 4, 1, 5}
	out := Smooth(in, false)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], in[i])
		}
	}
}

// TestSmoothPreservesConstant verifies that a flat series survives the
// low-pass filter unchanged within float tolerance.
func TestSmoothPreservesConstant(t *testing.T) {
	in := make([]float64, 365)
	for i := range in {
		in[i] = 7.5
	}
	out := Smooth(in, true)
	if len(out) != 365 {
		t.Fatalf("expected 365 entries, got %d", len(out))
	}
	for i, v := range out {
		if math.Abs(v-7.5) > 1e-9 {
			t.Fatalf("out[%d] = %v, want 7.5", i, v)
		}
	}
}

// TestSmoothFlattensNoise verifies that smoothing pulls a noisy sinusoid
// toward its underlying curve.
func TestSmoothFlattensNoise(t *testing.T) {
	n := 365
	in := make([]float64, n)
	for i := range in {
		base := 12 + 6*math.Sin(2*math.Pi*float64(i)/float64(n))
		noise := 0.25 * math.Sin(2*math.Pi*float64(i)*50/float64(n))
		in[i] = base + noise
	}

	out := Smooth(in, true)
	for i := range out {
		base := 12 + 6*math.Sin(2*math.Pi*float64(i)/float64(n))
		if math.Abs(out[i]-base) > 0.1 {
			t.Fatalf("out[%d] = %v, deviates from base %v", i, out[i], base)
		}
	}
}

func TestFitLength(t *testing.T) {
	in := []float64{1, 2, 3}

	same := FitLength(in, 3)
	if len(same) != 3 || same[2] != 3 {
		t.Errorf("same-length fit = %v", same)
	}

	trunc := FitLength(in, 2)
	if len(trunc) != 2 || trunc[1] != 2 {
		t.Errorf("truncated fit = %v", trunc)
	}

	padded := FitLength(in, 5)
	if len(padded) != 5 || padded[3] != 3 || padded[4] != 3 {
		t.Errorf("padded fit = %v", padded)
	}

	empty := FitLength(nil, 2)
	if len(empty) != 2 || empty[0] != 0 {
		t.Errorf("empty fit = %v", empty)
	}
}
