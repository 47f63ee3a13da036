package chart

import (
	"math"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/yearwheel/yearwheel/internal/config"
	"github.com/yearwheel/yearwheel/internal/dataset"
	"github.com/yearwheel/yearwheel/internal/geo"
	"github.com/yearwheel/yearwheel/internal/strava"
)

// TestCurrentMonthRotation verifies that the wallpaper rotation puts the
// current month's first day at 12 o'clock.
func TestCurrentMonthRotation(t *testing.T) {
	w := testWheel(2024)
	w.now = func() time.Time {
		return time.Date(2024, time.August, 15, 10, 0, 0, 0, time.UTC)
	}

	w.rotation = w.currentMonthRotation()

	// Jan through Jul 2024 sum to 213 days, so Aug 1 is day index 213.
	got := math.Mod(w.Angle(213), 2*math.Pi)
	if got < 0 {
		got += 2 * math.Pi
	}
	if got > 1e-9 && math.Abs(got-2*math.Pi) > 1e-9 {
		t.Errorf("August start angle = %v, want 0", got)
	}
}

// TestCurrentMonthRotationJanuary verifies the no-op case: in January the
// wheel already starts at the top.
func TestCurrentMonthRotationJanuary(t *testing.T) {
	w := testWheel(2024)
	w.now = func() time.Time {
		return time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	}
	if got := w.currentMonthRotation(); got != 0 {
		t.Errorf("January rotation = %v, want 0", got)
	}
}

// TestWallpaperRotationFlag verifies that the rotation only applies when
// configured.
func TestWallpaperRotationFlag(t *testing.T) {
	cfg := &config.Config{
		Year:      2024,
		Wallpaper: config.Wallpaper{Width: 1920, Height: 1080, Size: 1.2},
	}
	w := NewWallpaperWheel(cfg, &dataset.Dataset{Year: 2024}, geo.Location{}, nil, zap.NewNop())
	if w.rotation != 0 {
		t.Errorf("rotation = %v without the flag, want 0", w.rotation)
	}
}

// TestVariantComposition verifies which variants carry the activity layer:
// the wallpaper does, the dawn chart does not.
func TestVariantComposition(t *testing.T) {
	cfg := &config.Config{
		Year:      2024,
		Layers:    config.Layers{Strava: true},
		Wallpaper: config.Wallpaper{Width: 1920, Height: 1080, Size: 1.2},
	}
	in := Inputs{
		Cfg:  cfg,
		Data: &dataset.Dataset{Year: 2024},
		Log:  zap.NewNop(),
		Activities: []strava.Activity{
			{ID: 1, StartDate: "2024-03-10T06:45:00", Distance: 5000, Type: "Run"},
		},
	}

	dawn, err := Dawn(in)
	if err != nil {
		t.Fatalf("dawn: %v", err)
	}
	if hasLayer(dawn, "strava") {
		t.Error("dawn chart should not carry the activity layer")
	}

	wallpaper, err := Wallpaper(in)
	if err != nil {
		t.Fatalf("wallpaper: %v", err)
	}
	if !hasLayer(wallpaper, "strava") {
		t.Error("wallpaper should carry the activity layer")
	}
}

func hasLayer(w *Wheel, name string) bool {
	for _, l := range w.layers {
		if l.Name() == name {
			return true
		}
	}
	return false
}
