package chart

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/yearwheel/yearwheel/internal/config"
	"github.com/yearwheel/yearwheel/internal/strava"
)

// ActivityLayer draws Strava runs and walks: one radial stroke per activity
// (start hour sets the inner end, distance the length), a cumulative
// distance spiral per year, and a dashed spiral for the yearly target.
type ActivityLayer struct {
	activities []strava.Activity
}

func NewActivityLayer(activities []strava.Activity) *ActivityLayer {
	return &ActivityLayer{activities: activities}
}

func (l *ActivityLayer) Name() string { return "strava" }

func (l *ActivityLayer) TimeRange() (float64, float64, bool) {
	return 0, 0, false
}

// plotActivity is an activity projected onto the target year's wheel.
type plotActivity struct {
	dayOfYear  int     // one-based in the chart year
	startHour  float64 // decimal hours
	distanceKm float64
	actType    string
	year       int   // original year, for dimming and grouping
}

func (l *ActivityLayer) Draw(w *Wheel) error {
	acts := l.project(w)
	if len(acts) == 0 {
		w.log.Warn("no activities to plot")
		return nil
	}

	sort.Slice(acts, func(i, j int) bool { return acts[i].dayOfYear < acts[j].dayOfYear })

	timeRange := w.EndHour() - w.StartHour()
	// One percent of the radial window per kilometer for single strokes.
	strokeScale := timeRange / 100 / 24
	// Cumulative spirals span 90% of the window per 1000 km.
	kmToFrac := timeRange / 24 * 0.9 / 1000

	runCol := Hex(w.Cfg.Colors.Run)
	walkCol := Hex(w.Cfg.Colors.Walk)

	for _, a := range acts {
		theta := w.Angle(float64(a.dayOfYear))
		rStart := a.startHour / 24
		rEnd := rStart + a.distanceKm*strokeScale

		col := runCol
		if a.actType != "Run" {
			col = walkCol
		}
		if a.year < w.Cfg.Year {
			col = WithAlpha(col, 0.25)
		}
		w.RadialLine(theta, rStart, rEnd, col, 0.5)
	}

	l.drawCumulativeSpirals(w, acts, kmToFrac)
	l.drawTargetSpiral(w, kmToFrac)
	return nil
}

func (l *ActivityLayer) drawCumulativeSpirals(w *Wheel, acts []plotActivity, kmToFrac float64) {
	years := map[int]bool{}
	for _, a := range acts {
		years[a.year] = true
	}

	spiralCol := Hex(w.Cfg.Colors.Walk)
	base := w.StartHour() / 24

	for year := range years {
		var thetas, fracs []float64
		cumulative := 0.0
		for _, a := range acts {
			if a.year != year {
				continue
			}
			cumulative += a.distanceKm
			thetas = append(thetas, w.Angle(float64(a.dayOfYear)))
			fracs = append(fracs, base+cumulative*kmToFrac)
		}

		col := spiralCol
		if year < w.Cfg.Year {
			col = WithAlpha(col, 0.25)
		}
		w.Polyline(thetas, fracs, col, 0.2)
	}
}

func (l *ActivityLayer) drawTargetSpiral(w *Wheel, kmToFrac float64) {
	n := w.NumPoints()
	daily := w.Cfg.Strava.TargetKm / float64(n)
	base := w.StartHour() / 24

	thetas := make([]float64, n)
	fracs := make([]float64, n)
	for day := 0; day < n; day++ {
		thetas[day] = w.Angle(float64(day + 1))
		fracs[day] = base + daily*float64(day+1)*kmToFrac
	}
	w.Polyline(thetas, fracs, WithAlpha(Hex("#808080"), 0.25), 0.35, 2, 2)
}

// project filters configured activity types and maps each activity's date
// onto the chart year, skipping February 29 when the chart year has none.
func (l *ActivityLayer) project(w *Wheel) []plotActivity {
	wanted := map[string]bool{}
	for _, t := range w.Cfg.Strava.Types {
		wanted[t] = true
	}

	var out []plotActivity
	for _, a := range l.activities {
		if !wanted[a.Type] {
			continue
		}
		start, err := a.Start()
		if err != nil {
			w.log.Warn("skipping activity with bad start date",
				zap.Int64("id", a.ID), zap.Error(err))
			continue
		}

		projected, ok := projectDate(start, w.Cfg.Year)
		if !ok {
			w.log.Debug("skipping Feb 29 activity in non-leap chart year",
				zap.Int64("id", a.ID))
			continue
		}

		out = append(out, plotActivity{
			dayOfYear:  projected.YearDay(),
			startHour:  float64(start.Hour()) + float64(start.Minute())/60,
			distanceKm: a.Distance / 1000,
			actType:    a.Type,
			year:       start.Year(),
		})
	}
	return out
}

// projectDate moves a date into the chart year, reporting false for
// February 29 when that year is not a leap year.
func projectDate(t time.Time, year int) (time.Time, bool) {
	if t.Month() == time.February && t.Day() == 29 && !config.IsLeap(year) {
		return time.Time{}, false
	}
	return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}
