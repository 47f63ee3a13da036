package strava

import (
	"testing"
	"time"
)

// TestSaveActivitiesDedupes verifies ID de-duplication and date ordering.
func TestSaveActivitiesDedupes(t *testing.T) {
	dir := t.TempDir()
	acts := []Activity{
		{ID: 2, Name: "Evening Run", StartDate: "2024-03-02T18:00:00Z", Type: "Run"},
		{ID: 1, Name: "Morning Walk", StartDate: "2024-03-01T08:00:00Z", Type: "Walk"},
		{ID: 2, Name: "Evening Run (dup)", StartDate: "2024-03-02T18:00:00Z", Type: "Run"},
	}

	if err := SaveActivities(dir, acts); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadActivities(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 activities after dedupe, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("expected date-sorted IDs [1 2], got [%d %d]", got[0].ID, got[1].ID)
	}
}

// TestLoadActivitiesMissing verifies the empty result for a fresh data dir.
func TestLoadActivitiesMissing(t *testing.T) {
	got, err := LoadActivities(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

// TestLastActivityDate verifies incremental-fetch anchoring.
func TestLastActivityDate(t *testing.T) {
	dir := t.TempDir()

	last, err := LastActivityDate(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !last.IsZero() {
		t.Fatalf("expected zero time for empty store, got %v", last)
	}

	acts := []Activity{
		{ID: 1, StartDate: "2024-03-01T08:00:00Z"},
		{ID: 2, StartDate: "2024-05-20T18:30:00Z"},
	}
	if err := SaveActivities(dir, acts); err != nil {
		t.Fatalf("save: %v", err)
	}

	last, err = LastActivityDate(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 5, 20, 18, 30, 0, 0, time.UTC)
	if !last.Equal(want) {
		t.Errorf("expected %v, got %v", want, last)
	}
}

// TestActivityStart verifies both start date formats Strava emits.
func TestActivityStart(t *testing.T) {
	withOffset := Activity{ID: 1, StartDate: "2024-03-01T08:00:00Z"}
	if _, err := withOffset.Start(); err != nil {
		t.Errorf("RFC 3339 start failed: %v", err)
	}

	local := Activity{ID: 2, StartDate: "2024-03-01T08:00:00"}
	ts, err := local.Start()
	if err != nil {
		t.Fatalf("offset-less start failed: %v", err)
	}
	if ts.Hour() != 8 {
		t.Errorf("expected hour 8, got %d", ts.Hour())
	}

	bad := Activity{ID: 3, StartDate: "yesterday"}
	if _, err := bad.Start(); err == nil {
		t.Error("expected error for unparseable start date")
	}
}
