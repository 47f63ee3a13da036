// Package geo resolves city names to coordinates and timezones.
package geo

import (
	"fmt"
	"math"
	"time"
)

// Location is a place the charts are rendered for.
type Location struct {
	Name      string
	Country   string
	Timezone  string
	Latitude  float64
	Longitude float64
}

// TZ loads the location's *time.Location.
func (l Location) TZ() (*time.Location, error) {
	tz, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", l.Timezone, err)
	}
	return tz, nil
}

// FormatCoordinates renders coordinates with degree signs and N/S, E/W
// postfixes, e.g. "52.520008°N,   13.404954°E".
func (l Location) FormatCoordinates() string {
	ns := "N"
	if l.Latitude < 0 {
		ns = "S"
	}
	ew := "E"
	if l.Longitude < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.6f°%s,   %.6f°%s",
		math.Abs(l.Latitude), ns, math.Abs(l.Longitude), ew)
}
