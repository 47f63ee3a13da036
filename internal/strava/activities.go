// Package strava fetches athlete activities through the Strava v3 API and
// persists them for the activity layer.
package strava

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Activity is the normalized shape stored in strava_activities.json.
type Activity struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	StartDate    string  `json:"start_date"` // local time, RFC 3339
	Distance     float64 `json:"distance"`   // meters
	MovingTime   int64   `json:"moving_time"`
	ElapsedTime  int64   `json:"elapsed_time"`
	Type         string  `json:"type"`
	AverageSpeed float64 `json:"average_speed"`
}

// Start parses the activity's local start time.
func (a Activity) Start() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, a.StartDate)
	if err != nil {
		// Strava's start_date_local omits the offset in some exports.
		t, err = time.Parse("2006-01-02T15:04:05", a.StartDate)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("activity %d: parse start %q: %w", a.ID, a.StartDate, err)
	}
	return t, nil
}

func activitiesPath(dir string) string {
	return filepath.Join(dir, "strava_activities.json")
}

// LoadActivities reads stored activities; a missing file yields an empty set.
func LoadActivities(dir string) ([]Activity, error) {
	raw, err := os.ReadFile(activitiesPath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read activities: %w", err)
	}

	var acts []Activity
	if err := json.Unmarshal(raw, &acts); err != nil {
		return nil, fmt.Errorf("parse activities: %w", err)
	}
	return acts, nil
}

// SaveActivities writes the activity set, de-duplicated by ID and sorted by
// start date so incremental fetches can simply append.
func SaveActivities(dir string, acts []Activity) error {
	seen := make(map[int64]bool, len(acts))
	out := acts[:0]
	for _, a := range acts {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	raw, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("encode activities: %w", err)
	}
	if err := os.WriteFile(activitiesPath(dir), raw, 0o644); err != nil {
		return fmt.Errorf("write activities: %w", err)
	}
	return nil
}

// LastActivityDate returns the newest stored start time, for incremental
// fetching. Zero time when nothing is stored.
func LastActivityDate(dir string) (time.Time, error) {
	acts, err := LoadActivities(dir)
	if err != nil || len(acts) == 0 {
		return time.Time{}, err
	}

	var last time.Time
	for _, a := range acts {
		t, err := a.Start()
		if err != nil {
			continue
		}
		if t.After(last) {
			last = t
		}
	}
	return last, nil
}
