package chart

import (
	"math"

	"github.com/yearwheel/yearwheel/internal/dataset"
)

// DawnLayer renders the morning half only: night from the center up to
// sunrise, the three twilight bands, and daylight out to the rim.
type DawnLayer struct {
	data *dataset.Dataset
}

func NewDawnLayer(data *dataset.Dataset) *DawnLayer {
	return &DawnLayer{data: data}
}

func (l *DawnLayer) Name() string { return "dawn" }

// TimeRange spans from the earliest astronomical dawn to just past the
// latest sunrise, snapped to quarter hours.
func (l *DawnLayer) TimeRange() (float64, float64, bool) {
	astroDawn := dataset.DawnPairs(l.data.Astro)
	start := math.Floor(minOf(astroDawn)*4) / 4
	end := math.Ceil(maxOf(l.data.Sunrise)*4)/4 + 0.25
	return start, end, true
}

func (l *DawnLayer) Draw(w *Wheel) error {
	d := l.data
	smooth := w.Cfg.Smoothen
	n := w.NumPoints()

	sunrise := fracSeries(dataset.Smooth(dataset.FitLength(d.Sunrise, n), smooth))
	civil := fracSeries(dataset.Smooth(dataset.FitLength(dataset.DawnPairs(d.Civil), n), smooth))
	nautical := fracSeries(dataset.Smooth(dataset.FitLength(dataset.DawnPairs(d.Nautical), n), smooth))
	astro := fracSeries(dataset.Smooth(dataset.FitLength(dataset.DawnPairs(d.Astro), n), smooth))

	colors := w.Cfg.Colors
	timeRange := w.EndHour() - w.StartHour()
	daylightTop := w.EndHour()/24 - timeRange/24*0.03

	w.FillBetween(ConstSeries(n, w.StartHour()/24), sunrise, Hex(colors.Night))
	w.FillBetween(sunrise, ConstSeries(n, daylightTop), Hex(colors.Daylight))
	w.FillBetween(astro, nautical, Hex(colors.Astro))
	w.FillBetween(nautical, civil, Hex(colors.Nautical))
	w.FillBetween(civil, sunrise, Hex(colors.Civil))
	return nil
}

// Footer shows the same twilight legend as the full-day chart.
func (l *DawnLayer) Footer(w *Wheel, r FooterRect) {
	drawTwilightLegend(w, r)
}

// fracSeries converts decimal hours to day fractions.
func fracSeries(hours []float64) []float64 {
	out := make([]float64, len(hours))
	for i, h := range hours {
		out[i] = h / 24
	}
	return out
}

func minOf(s []float64) float64 {
	m := math.Inf(1)
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

func maxOf(s []float64) float64 {
	m := math.Inf(-1)
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}
