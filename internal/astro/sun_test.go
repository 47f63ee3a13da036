package astro

import (
	"testing"

	"github.com/yearwheel/yearwheel/internal/geo"
)

// TestComputeYearMidLatitude verifies full-year series for a location where
// every solar event happens daily.
func TestComputeYearMidLatitude(t *testing.T) {
	loc := geo.Location{
		Name:      "Berlin",
		Timezone:  "UTC",
		Latitude:  52.52,
		Longitude: 13.405,
	}

	data, err := NewCalculator(loc, 2024, nil).ComputeYear()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.Sunrise) != 366 {
		t.Fatalf("expected 366 days, got %d", len(data.Sunrise))
	}
	if len(data.Civil) != 366 || len(data.Nautical) != 366 || len(data.Astro) != 366 {
		t.Fatal("twilight series length mismatch")
	}

	for i := range data.Sunrise {
		if data.Sunrise[i] < 0 || data.Sunrise[i] >= 24 {
			t.Fatalf("day %d: sunrise %v out of range", i, data.Sunrise[i])
		}
		if data.Sunset[i] <= data.Sunrise[i] {
			t.Fatalf("day %d: sunset %v not after sunrise %v", i, data.Sunset[i], data.Sunrise[i])
		}
		if data.Civil[i][0] > data.Sunrise[i] {
			t.Fatalf("day %d: civil dawn %v after sunrise %v", i, data.Civil[i][0], data.Sunrise[i])
		}
		if data.MoonPhases[i] < 0 || data.MoonPhases[i] >= 28 {
			t.Fatalf("day %d: moon phase %v out of range", i, data.MoonPhases[i])
		}
	}
}

// TestComputeYearPolar verifies that polar latitudes come back gap-filled
// rather than erroring on midnight sun days.
func TestComputeYearPolar(t *testing.T) {
	loc := geo.Location{
		Name:      "Tromso",
		Timezone:  "UTC",
		Latitude:  69.65,
		Longitude: 18.96,
	}

	data, err := NewCalculator(loc, 2024, nil).ComputeYear()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range data.Sunrise {
		if v == missing {
			t.Fatalf("day %d: sunrise left unfilled", i)
		}
	}
	for i, p := range data.Astro {
		if p[0] == missing || p[1] == missing {
			t.Fatalf("day %d: astro twilight left unfilled", i)
		}
	}
}
