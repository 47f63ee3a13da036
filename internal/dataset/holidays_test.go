package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoadHolidays verifies parsing of a holidays file.
func TestLoadHolidays(t *testing.T) {
	dir := t.TempDir()
	content := `{"holidays": [
		{"name": "Midsummer", "date": "2024-06-21"},
		{"name": "Independence Day", "date": "2024-12-06"}
	]}`
	if err := os.WriteFile(filepath.Join(dir, "holidays.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write holidays: %v", err)
	}

	holidays, err := LoadHolidays(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(holidays) != 2 {
		t.Fatalf("expected 2 holidays, got %d", len(holidays))
	}
	if holidays[0].Name != "Midsummer" {
		t.Errorf("expected Midsummer, got %q", holidays[0].Name)
	}
	want := time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC)
	if !holidays[0].Date.Equal(want) {
		t.Errorf("expected %v, got %v", want, holidays[0].Date)
	}
}

// TestLoadHolidaysMissingFile verifies that no file means no holidays.
func TestLoadHolidaysMissingFile(t *testing.T) {
	holidays, err := LoadHolidays(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if holidays != nil {
		t.Fatalf("expected nil, got %v", holidays)
	}
}

// TestLoadHolidaysBadDate verifies the error path for malformed dates.
func TestLoadHolidaysBadDate(t *testing.T) {
	dir := t.TempDir()
	content := `{"holidays": [{"name": "Broken", "date": "June 21"}]}`
	if err := os.WriteFile(filepath.Join(dir, "holidays.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write holidays: %v", err)
	}
	if _, err := LoadHolidays(dir); err == nil {
		t.Fatal("expected error for bad date format")
	}
}
