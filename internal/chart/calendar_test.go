package chart

import (
	"testing"

	"github.com/yearwheel/yearwheel/internal/config"
)

// TestFirstSunday verifies the zero-based index of the year's first Sunday.
func TestFirstSunday(t *testing.T) {
	cases := []struct {
		year, want int
	}{
		{2023, 0}, // Jan 1 2023 is a Sunday
		{2024, 6}, // Jan 1 2024 is a Monday
		{2025, 4}, // Jan 1 2025 is a Wednesday
	}
	for _, c := range cases {
		if got := FirstSunday(c.year); got != c.want {
			t.Errorf("FirstSunday(%d) = %d, want %d", c.year, got, c.want)
		}
	}
}

// TestMonthDay verifies day-of-year to day-of-month conversion.
func TestMonthDay(t *testing.T) {
	days := config.DaysInMonth(2024)

	cases := []struct {
		index, want int
	}{
		{0, 1},   // Jan 1
		{30, 31}, // Jan 31
		{31, 1},  // Feb 1
		{59, 29}, // Feb 29 (leap)
		{60, 1},  // Mar 1
	}
	for _, c := range cases {
		if got := MonthDay(days, c.index); got != c.want {
			t.Errorf("MonthDay(%d) = %d, want %d", c.index, got, c.want)
		}
	}
}

// TestHourTicks verifies the grid ring fractions over a window.
func TestHourTicks(t *testing.T) {
	ticks := HourTicks(3, 9, 1)
	if len(ticks) != 6 {
		t.Fatalf("expected 6 ticks, got %d", len(ticks))
	}
	if ticks[0] != 3.0/24 || ticks[5] != 8.0/24 {
		t.Errorf("tick range = [%v, %v]", ticks[0], ticks[5])
	}
}

// TestHourLabels verifies clock formatting including the AM/PM transition.
func TestHourLabels(t *testing.T) {
	labels := HourLabels(3, 9, 1)
	if labels[0] != "" {
		t.Errorf("expected empty innermost label, got %q", labels[0])
	}
	if labels[1] != "4:00AM" {
		t.Errorf("expected 4:00AM, got %q", labels[1])
	}

	noon := HourLabels(11, 15, 1)
	if noon[1] != "12:00PM" {
		t.Errorf("expected 12:00PM, got %q", noon[1])
	}
	if noon[2] != "1:00PM" {
		t.Errorf("expected 1:00PM, got %q", noon[2])
	}
}
