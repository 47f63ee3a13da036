// Package astro computes per-day solar and lunar series for a year.
package astro

import (
	"fmt"
	"time"

	"github.com/sj14/astral"
	"go.uber.org/zap"

	"github.com/yearwheel/yearwheel/internal/config"
	"github.com/yearwheel/yearwheel/internal/geo"
)

// missing marks days where a solar event does not occur (polar day/night).
// Gap-filled by interpolation before the data is persisted.
const missing = -1

// YearData holds one value (or dawn/dusk pair) per day of the year, as
// decimal hours in the location's timezone.
type YearData struct {
	Sunrise    []float64
	Sunset     []float64
	Noon       []float64
	MoonPhases []float64

	// Twilight pairs: [dawn, dusk] at 6°, 12° and 18° sun depression.
	Civil    [][2]float64
	Nautical [][2]float64
	Astro    [][2]float64
}

// Calculator produces YearData for a location.
type Calculator struct {
	loc  geo.Location
	year int
	log  *zap.Logger
}

func NewCalculator(loc geo.Location, year int, log *zap.Logger) *Calculator {
	return &Calculator{loc: loc, year: year, log: log}
}

// ComputeYear walks every day of the year, computing sun events and moon
// phase, then interpolates over days where an event never happens.
func (c *Calculator) ComputeYear() (*YearData, error) {
	tz, err := c.loc.TZ()
	if err != nil {
		return nil, err
	}

	observer := astral.Observer{
		Latitude:  c.loc.Latitude,
		Longitude: c.loc.Longitude,
	}

	n := 365
	if config.IsLeap(c.year) {
		n = 366
	}

	data := &YearData{
		Sunrise:    make([]float64, 0, n),
		Sunset:     make([]float64, 0, n),
		Noon:       make([]float64, 0, n),
		MoonPhases: make([]float64, 0, n),
		Civil:      make([][2]float64, 0, n),
		Nautical:   make([][2]float64, 0, n),
		Astro:      make([][2]float64, 0, n),
	}

	day := time.Date(c.year, time.January, 1, 12, 0, 0, 0, tz)
	for day.Year() == c.year {
		d := c.computeDay(observer, day)

		data.Sunrise = append(data.Sunrise, d.sunrise)
		data.Sunset = append(data.Sunset, d.sunset)
		data.Noon = append(data.Noon, d.noon)
		data.MoonPhases = append(data.MoonPhases, d.moonPhase)
		data.Civil = append(data.Civil, [2]float64{d.civilDawn, d.civilDusk})
		data.Nautical = append(data.Nautical, [2]float64{d.nauticalDawn, d.nauticalDusk})
		data.Astro = append(data.Astro, [2]float64{d.astroDawn, d.astroDusk})

		day = day.AddDate(0, 0, 1)
	}
	if len(data.Sunrise) != n {
		return nil, fmt.Errorf("expected %d days, computed %d", n, len(data.Sunrise))
	}

	if err := data.interpolate(); err != nil {
		return nil, fmt.Errorf("interpolate sun data: %w", err)
	}
	return data, nil
}

type dayEvents struct {
	sunrise, sunset, noon          float64
	civilDawn, civilDusk           float64
	nauticalDawn, nauticalDusk     float64
	astroDawn, astroDusk, moonPhase float64
}

func (c *Calculator) computeDay(observer astral.Observer, date time.Time) dayEvents {
	d := dayEvents{moonPhase: astral.MoonPhase(date)}

	d.sunrise = c.event(date, func() (time.Time, error) { return astral.Sunrise(observer, date) })
	d.sunset = c.event(date, func() (time.Time, error) { return astral.Sunset(observer, date) })
	d.noon = decimalHours(astral.Noon(observer, date).In(date.Location()))

	// Depression angles below the horizon: 6° civil, 12° nautical, 18° astronomical.
	d.civilDawn = c.event(date, func() (time.Time, error) { return astral.Dawn(observer, date, 6) })
	d.civilDusk = c.event(date, func() (time.Time, error) { return astral.Dusk(observer, date, 6) })
	d.nauticalDawn = c.event(date, func() (time.Time, error) { return astral.Dawn(observer, date, 12) })
	d.nauticalDusk = c.event(date, func() (time.Time, error) { return astral.Dusk(observer, date, 12) })
	d.astroDawn = c.event(date, func() (time.Time, error) { return astral.Dawn(observer, date, 18) })
	d.astroDusk = c.event(date, func() (time.Time, error) { return astral.Dusk(observer, date, 18) })

	return d
}

// event converts an astral computation into decimal hours, marking days
// where the event never occurs.
func (c *Calculator) event(date time.Time, f func() (time.Time, error)) float64 {
	t, err := f()
	if err != nil {
		if c.log != nil {
			c.log.Debug("sun event missing",
				zap.String("date", date.Format("2006-01-02")),
				zap.Error(err))
		}
		return missing
	}
	return decimalHours(t.In(date.Location()))
}

// decimalHours converts a wall-clock time to fractional hours, minute
// resolution matching the chart's angular precision.
func decimalHours(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}
