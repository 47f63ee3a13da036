package chart

import (
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/yearwheel/yearwheel/internal/config"
	"github.com/yearwheel/yearwheel/internal/dataset"
	"github.com/yearwheel/yearwheel/internal/geo"
)

func testWheel(year int) *Wheel {
	cfg := &config.Config{Year: year}
	w := NewWheel(cfg, &dataset.Dataset{Year: year}, geo.Location{}, nil, zap.NewNop())
	w.start, w.end = 0, 24
	return w
}

// TestAngle verifies the clockwise-from-top day-to-angle mapping.
func TestAngle(t *testing.T) {
	w := testWheel(2023)

	if got := w.Angle(0); got != 0 {
		t.Errorf("day 0 angle = %v, want 0", got)
	}
	quarter := w.Angle(365.0 / 4)
	if math.Abs(quarter-math.Pi/2) > 1e-9 {
		t.Errorf("quarter-year angle = %v, want %v", quarter, math.Pi/2)
	}
	full := w.Angle(365)
	if math.Abs(full-2*math.Pi) > 1e-9 {
		t.Errorf("full-year angle = %v, want %v", full, 2*math.Pi)
	}
}

// TestRadius verifies the radial window mapping from hours to radius.
func TestRadius(t *testing.T) {
	w := testWheel(2023)

	if got := w.Radius(0); got != 0 {
		t.Errorf("window start radius = %v, want 0", got)
	}
	if got := w.Radius(1); math.Abs(got-w.maxR) > 1e-9 {
		t.Errorf("window end radius = %v, want %v", got, w.maxR)
	}

	// Narrow the window to the morning hours.
	w.start, w.end = 3, 9
	if got := w.Radius(3.0 / 24); math.Abs(got) > 1e-9 {
		t.Errorf("3h radius = %v, want 0", got)
	}
	if got := w.Radius(6.0 / 24); math.Abs(got-w.maxR/2) > 1e-9 {
		t.Errorf("6h radius = %v, want %v", got, w.maxR/2)
	}
	if got := w.Radius(9.0 / 24); math.Abs(got-w.maxR) > 1e-9 {
		t.Errorf("9h radius = %v, want %v", got, w.maxR)
	}
}

// TestPoint verifies polar-to-canvas conversion at the cardinal angles.
func TestPoint(t *testing.T) {
	w := testWheel(2023)

	// Straight up from center at angle 0.
	x, y := w.Point(0, 1)
	if math.Abs(x-w.cx) > 1e-9 || math.Abs(y-(w.cy+w.maxR)) > 1e-9 {
		t.Errorf("top point = (%v, %v)", x, y)
	}

	// A quarter turn lands on the right side (clockwise wheel).
	x, y = w.Point(math.Pi/2, 1)
	if math.Abs(x-(w.cx+w.maxR)) > 1e-9 || math.Abs(y-w.cy) > 1e-9 {
		t.Errorf("quarter-turn point = (%v, %v)", x, y)
	}
}

// TestTangentialRotation verifies label alignment angles around the rim.
func TestTangentialRotation(t *testing.T) {
	cases := []struct {
		theta, want float64
	}{
		{0, 0},
		{math.Pi / 2, -90},
		{math.Pi, -180},
		{3 * math.Pi / 2, 90},
	}
	for _, c := range cases {
		got := TangentialRotation(c.theta)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("TangentialRotation(%v) = %v, want %v", c.theta, got, c.want)
		}
	}
}

func TestConstSeries(t *testing.T) {
	s := ConstSeries(3, 1.5)
	if len(s) != 3 || s[0] != 1.5 || s[2] != 1.5 {
		t.Errorf("ConstSeries = %v", s)
	}
}

// TestWindowUnion verifies that the radial window spans all layer ranges.
func TestWindowUnion(t *testing.T) {
	w := testWheel(2023)
	w.AddLayers(fixedRange{3, 9}, fixedRange{5, 11})
	w.computeWindow()
	if w.start != 3 || w.end != 11 {
		t.Errorf("window = [%v, %v], want [3, 11]", w.start, w.end)
	}
}

// TestWindowDefault verifies the full-day fallback with no ranged layers.
func TestWindowDefault(t *testing.T) {
	w := testWheel(2023)
	w.AddLayers(NewMonthsLayer(), NewHoursLayer())
	w.computeWindow()
	if w.start != 0 || w.end != 24 {
		t.Errorf("window = [%v, %v], want [0, 24]", w.start, w.end)
	}
}

type fixedRange struct {
	s, e float64
}

func (f fixedRange) Name() string                        { return "fixed" }
func (f fixedRange) TimeRange() (float64, float64, bool) { return f.s, f.e, true }
func (f fixedRange) Draw(w *Wheel) error                 { return nil }
