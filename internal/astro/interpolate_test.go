package astro

import (
	"math"
	"testing"
	"time"
)

// TestFillGapsInterior verifies linear interpolation across a gap in the
// middle of a series.
func TestFillGapsInterior(t *testing.T) {
	s := []float64{4, missing, missing, 10}
	if err := fillGaps(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{4, 6, 8, 10}
	for i := range want {
		if math.Abs(s[i]-want[i]) > 1e-9 {
			t.Errorf("s[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}

// TestFillGapsEdges verifies extrapolation from the nearest segment when the
// gap touches either end of the year.
func TestFillGapsEdges(t *testing.T) {
	s := []float64{missing, 2, 4, missing}
	if err := fillGaps(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(s[0]-0) > 1e-9 {
		t.Errorf("leading gap = %v, want 0", s[0])
	}
	if math.Abs(s[3]-6) > 1e-9 {
		t.Errorf("trailing gap = %v, want 6", s[3])
	}
}

// TestFillGapsComplete verifies that a gap-free series passes through
// untouched.
func TestFillGapsComplete(t *testing.T) {
	s := []float64{1, 2, 3}
	if err := fillGaps(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []float64{1, 2, 3} {
		if s[i] != want {
			t.Errorf("s[%d] = %v, want %v", i, s[i], want)
		}
	}
}

// TestFillGapsInsufficientData verifies the error when almost everything is
// missing.
func TestFillGapsInsufficientData(t *testing.T) {
	s := []float64{missing, 5, missing}
	if err := fillGaps(s); err == nil {
		t.Fatal("expected error for a single valid point")
	}
}

// TestInterpolatePairs verifies that twilight pairs are gap-filled per
// column.
func TestInterpolatePairs(t *testing.T) {
	d := &YearData{
		Sunrise: []float64{6, 6, 6},
		Sunset:  []float64{18, 18, 18},
		Noon:    []float64{12, 12, 12},
		Civil:    [][2]float64{{5, 19}, {missing, missing}, {7, 21}},
		Nautical: [][2]float64{{4, 20}, {4, 20}, {4, 20}},
		Astro:    [][2]float64{{3, 21}, {3, 21}, {3, 21}},
	}
	if err := d.interpolate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(d.Civil[1][0]-6) > 1e-9 || math.Abs(d.Civil[1][1]-20) > 1e-9 {
		t.Errorf("civil gap filled as %v, want [6 20]", d.Civil[1])
	}
}

func TestDecimalHours(t *testing.T) {
	got := decimalHours(time.Date(2024, 6, 1, 4, 30, 59, 0, time.UTC))
	if math.Abs(got-4.5) > 1e-9 {
		t.Errorf("decimalHours = %v, want 4.5", got)
	}
}
