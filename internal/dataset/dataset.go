// Package dataset persists the per-city, per-year data the chart layers
// consume. The sun and weather generators each own half the file and update
// it without clobbering the other half.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no dataset exists yet for a city.
var ErrNotFound = errors.New("dataset not found")

// Coordinates mirror the generator's resolved location.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Dataset is the on-disk record for one city and year. All time series hold
// one entry per day of the year; sun times are decimal hours, twilight
// entries are [dawn, dusk] pairs.
type Dataset struct {
	Year        int         `json:"year"`
	Coordinates Coordinates `json:"coordinates"`
	DaysInMonth []int       `json:"days_in_month"`

	Sunrise    []float64    `json:"sunrise"`
	Sunset     []float64    `json:"sunset"`
	Noon       []float64    `json:"noon"`
	MoonPhases []float64    `json:"moon_phases"`
	Civil      [][2]float64 `json:"civil"`
	Nautical   [][2]float64 `json:"nautical"`
	Astro      [][2]float64 `json:"astro"`

	Temperature   []float64 `json:"temperature,omitempty"`
	Precipitation []float64 `json:"precipitation,omitempty"`

	// WeatherDataYear records which year the weather series describes; for
	// the current year the generator falls back to the last complete one.
	WeatherDataYear int `json:"weather_data_year,omitempty"`
}

// Store reads and writes datasets under a data directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the dataset file for a city.
func (s *Store) Path(city string) string {
	return filepath.Join(s.dir, city+"_data.json")
}

// Load reads the dataset for a city.
func (s *Store) Load(city string) (*Dataset, error) {
	raw, err := os.ReadFile(s.Path(city))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path(city))
		}
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	ds := &Dataset{}
	if err := json.Unmarshal(raw, ds); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", s.Path(city), err)
	}
	return ds, nil
}

// LoadOrNew returns the stored dataset, or an empty one when none exists.
func (s *Store) LoadOrNew(city string) (*Dataset, error) {
	ds, err := s.Load(city)
	if errors.Is(err, ErrNotFound) {
		return &Dataset{}, nil
	}
	return ds, err
}

// Save writes the dataset, creating the data directory if needed.
func (s *Store) Save(city string, ds *Dataset) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	raw, err := json.MarshalIndent(ds, "", "    ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := os.WriteFile(s.Path(city), raw, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}

// Validate checks that the sun series cover every day of the year.
func (d *Dataset) Validate() error {
	n := 365
	if d.Year%4 == 0 && (d.Year%100 != 0 || d.Year%400 == 0) {
		n = 366
	}
	for name, length := range map[string]int{
		"sunrise":  len(d.Sunrise),
		"sunset":   len(d.Sunset),
		"civil":    len(d.Civil),
		"nautical": len(d.Nautical),
		"astro":    len(d.Astro),
	} {
		if length != n {
			return fmt.Errorf("series %s has %d entries, want %d", name, length, n)
		}
	}
	return nil
}

// HasWeather reports whether the weather generator has populated this file.
func (d *Dataset) HasWeather() bool {
	return len(d.Temperature) > 0
}

// DawnPairs splits a twilight pair series into its dawn column.
func DawnPairs(pairs [][2]float64) []float64 {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = p[0]
	}
	return out
}

// DuskPairs splits a twilight pair series into its dusk column.
func DuskPairs(pairs [][2]float64) []float64 {
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = p[1]
	}
	return out
}
