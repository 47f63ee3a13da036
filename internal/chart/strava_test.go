package chart

import (
	"testing"
	"time"

	"github.com/yearwheel/yearwheel/internal/strava"
)

// TestProjectDate verifies mapping activity dates onto the chart year.
func TestProjectDate(t *testing.T) {
	d := time.Date(2022, time.June, 15, 7, 30, 0, 0, time.UTC)
	got, ok := projectDate(d, 2024)
	if !ok {
		t.Fatal("expected projection to succeed")
	}
	if got.Year() != 2024 || got.Month() != time.June || got.Day() != 15 {
		t.Errorf("projected = %v", got)
	}

	leapDay := time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC)
	if _, ok := projectDate(leapDay, 2023); ok {
		t.Error("expected Feb 29 to be dropped in a non-leap year")
	}
	if _, ok := projectDate(leapDay, 2028); !ok {
		t.Error("expected Feb 29 to survive into a leap year")
	}
}

// TestActivityProjection verifies type filtering and field conversion.
func TestActivityProjection(t *testing.T) {
	w := testWheel(2024)
	w.Cfg.Strava.Types = []string{"Run", "Walk"}

	l := NewActivityLayer([]strava.Activity{
		{ID: 1, StartDate: "2024-03-10T06:45:00", Distance: 5000, Type: "Run"},
		{ID: 2, StartDate: "2023-07-01T18:00:00", Distance: 3000, Type: "Walk"},
		{ID: 3, StartDate: "2024-04-01T12:00:00", Distance: 40000, Type: "Ride"},
		{ID: 4, StartDate: "not-a-date", Distance: 1000, Type: "Run"},
	})

	acts := l.project(w)
	if len(acts) != 2 {
		t.Fatalf("expected 2 projected activities, got %d", len(acts))
	}

	run := acts[0]
	if run.actType != "Run" || run.year != 2024 {
		t.Errorf("unexpected run projection %+v", run)
	}
	// March 10 is day 70 of a leap year.
	if run.dayOfYear != 70 {
		t.Errorf("run day = %d, want 70", run.dayOfYear)
	}
	if run.startHour != 6.75 {
		t.Errorf("run start hour = %v, want 6.75", run.startHour)
	}
	if run.distanceKm != 5 {
		t.Errorf("run distance = %v, want 5", run.distanceKm)
	}

	walk := acts[1]
	if walk.year != 2023 {
		t.Errorf("walk year = %d, want 2023", walk.year)
	}
	// Projected into 2024, July 1 is day 183.
	if walk.dayOfYear != 183 {
		t.Errorf("walk day = %d, want 183", walk.dayOfYear)
	}
}
