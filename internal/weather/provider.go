// Package weather fetches historical daily weather series for a location.
package weather

import (
	"context"

	"github.com/yearwheel/yearwheel/internal/geo"
)

// DailySeries is one value per day of a year.
type DailySeries struct {
	// Year the series actually describes. May differ from the requested
	// year when that year is still incomplete.
	Year int

	Temperature   []float64 // mean daily temperature, °C
	Precipitation []float64 // daily precipitation sum, mm
}

// SeriesProvider abstracts a historical-weather data source.
type SeriesProvider interface {
	Name() string
	FetchDaily(ctx context.Context, loc geo.Location, year int) (DailySeries, error)
}
