package chart

import (
	"fmt"

	"github.com/tdewolff/canvas"

	"github.com/yearwheel/yearwheel/internal/dataset"
)

// PrecipitationLayer draws the precipitation ring, mechanically identical to
// the temperature ring but with its own offset and colormap.
type PrecipitationLayer struct {
	data *dataset.Dataset
	cmap Colormap

	min, max float64
	drawn    bool
}

func NewPrecipitationLayer(data *dataset.Dataset, cmap Colormap) *PrecipitationLayer {
	return &PrecipitationLayer{data: data, cmap: cmap}
}

func (l *PrecipitationLayer) Name() string { return "precipitation" }

func (l *PrecipitationLayer) TimeRange() (float64, float64, bool) {
	return 0, 0, false
}

func (l *PrecipitationLayer) Draw(w *Wheel) error {
	if len(l.data.Precipitation) == 0 {
		w.log.Warn("no precipitation data available; skipping ring")
		return nil
	}

	values := dataset.FitLength(l.data.Precipitation, w.NumPoints())
	l.min, l.max = minOf(values), maxOf(values)
	l.drawn = true

	timeRange := w.EndHour() - w.StartHour()
	offset := timeRange / 24 * w.Cfg.Offsets.Precipitation
	bandWidth := timeRange / 24 * 0.02
	rMid := w.EndHour()/24 - offset

	w.Ring(values, l.cmap, l.min, l.max, rMid-bandWidth/2, rMid+bandWidth/2)
	return nil
}

func (l *PrecipitationLayer) Footer(w *Wheel, r FooterRect) {
	if !l.drawn {
		return
	}
	drawColorbar(w, r, l.cmap, l.min, l.max,
		"Average precipitation (mm)",
		func(v float64) string { return fmt.Sprintf("%.1fmm", v) })
}

// drawColorbar renders a thin horizontal gradient bar with a title above and
// five evenly spaced tick labels below.
func drawColorbar(w *Wheel, r FooterRect, cmap Colormap, min, max float64, title string, format func(float64) string) {
	barX := r.X + r.W*0.25
	barW := r.W * 0.5
	barH := 3.0
	barY := r.Y + r.H - 14

	const slices = 128
	w.dc.SetStrokeColor(canvas.Transparent)
	for i := 0; i < slices; i++ {
		t := float64(i) / float64(slices-1)
		v := min + t*(max-min)
		w.dc.SetFillColor(cmap.At(v, min, max))
		w.dc.DrawPath(barX+t*barW, barY, canvas.Rectangle(barW/float64(slices)+0.3, barH))
	}

	titleCol := Hex(w.Cfg.Colors.TitleText)
	w.drawAnchoredText(barX+barW/2, barY+barH+4, title, w.Fonts.Face(8, titleCol, false), canvas.Center)

	tickFace := w.Fonts.Face(6, WithAlpha(titleCol, 0.5), false)
	for i := 0; i < 5; i++ {
		t := float64(i) / 4
		v := min + t*(max-min)
		w.drawAnchoredText(barX+t*barW, barY-6, format(v), tickFace, canvas.Center)
	}
}
