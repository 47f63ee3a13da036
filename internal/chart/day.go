package chart

import (
	"github.com/tdewolff/canvas"

	"github.com/yearwheel/yearwheel/internal/dataset"
)

// DayLayer renders the full day: dawn and dusk twilight bands with daylight
// between sunrise and sunset and night elsewhere.
type DayLayer struct {
	data *dataset.Dataset
}

func NewDayLayer(data *dataset.Dataset) *DayLayer {
	return &DayLayer{data: data}
}

func (l *DayLayer) Name() string { return "day" }

func (l *DayLayer) TimeRange() (float64, float64, bool) {
	return 0, 24, true
}

func (l *DayLayer) Draw(w *Wheel) error {
	d := l.data
	smooth := w.Cfg.Smoothen
	n := w.NumPoints()

	prep := func(series []float64) []float64 {
		return fracSeries(dataset.Smooth(dataset.FitLength(series, n), smooth))
	}

	sunrise := prep(d.Sunrise)
	sunset := prep(d.Sunset)
	civilDawn := prep(dataset.DawnPairs(d.Civil))
	nauticalDawn := prep(dataset.DawnPairs(d.Nautical))
	astroDawn := prep(dataset.DawnPairs(d.Astro))
	civilDusk := prep(dataset.DuskPairs(d.Civil))
	nauticalDusk := prep(dataset.DuskPairs(d.Nautical))
	astroDusk := prep(dataset.DuskPairs(d.Astro))

	colors := w.Cfg.Colors
	timeRange := w.EndHour() - w.StartHour()
	rimTop := w.EndHour()/24 - timeRange/24*0.03

	// Morning: night core, daylight disc, then twilight bands over it.
	w.FillBetween(ConstSeries(n, w.StartHour()/24), sunrise, Hex(colors.Night))
	w.FillBetween(sunrise, ConstSeries(n, rimTop), Hex(colors.Daylight))
	w.FillBetween(astroDawn, nauticalDawn, Hex(colors.Astro))
	w.FillBetween(nauticalDawn, civilDawn, Hex(colors.Nautical))
	w.FillBetween(civilDawn, sunrise, Hex(colors.Civil))

	// Evening: night above sunset, dusk bands between.
	w.FillBetween(sunset, ConstSeries(n, rimTop), Hex(colors.Night))
	w.FillBetween(sunset, civilDusk, Hex(colors.Civil))
	w.FillBetween(civilDusk, nauticalDusk, Hex(colors.Nautical))
	w.FillBetween(nauticalDusk, astroDusk, Hex(colors.Astro))
	return nil
}

// Footer draws the twilight legend: a colored dot with label and description
// per phase.
func (l *DayLayer) Footer(w *Wheel, r FooterRect) {
	drawTwilightLegend(w, r)
}

type legendItem struct {
	label, description string
	color              string
}

func drawTwilightLegend(w *Wheel, r FooterRect) {
	colors := w.Cfg.Colors
	items := []legendItem{
		{"Daylight", "Sun above horizon", colors.Daylight},
		{"Civil Twilight", "Sun ≤6° below horizon", colors.Civil},
		{"Nautical Twilight", "Sun 6° to 12° below horizon", colors.Nautical},
		{"Astronomical Twilight", "Sun 12° to 18° below horizon", colors.Astro},
		{"Night", "Sun > 18° below horizon", colors.Night},
	}

	titleCol := Hex(colors.TitleText)
	labelFace := w.Fonts.Face(9, titleCol, true)
	descFace := w.Fonts.Face(7, WithAlpha(titleCol, 0.6), false)

	step := r.W / float64(len(items))
	for i, item := range items {
		x := r.X + step*(float64(i)+0.5)

		w.dc.SetStrokeColor(canvas.Transparent)
		w.dc.SetFillColor(Hex(item.color))
		w.dc.DrawPath(x, r.Y+r.H-8, canvas.Circle(5))

		w.drawAnchoredText(x, r.Y+r.H-20, item.label, labelFace, canvas.Center)
		w.drawAnchoredText(x, r.Y+r.H-28, item.description, descFace, canvas.Center)
	}
}
