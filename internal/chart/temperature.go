package chart

import (
	"fmt"

	"github.com/yearwheel/yearwheel/internal/dataset"
)

// TemperatureLayer draws the mean-temperature ring near the rim, one colored
// segment per day, plus a horizontal colorbar in the footer.
type TemperatureLayer struct {
	data *dataset.Dataset
	cmap Colormap

	min, max float64
	drawn    bool
}

func NewTemperatureLayer(data *dataset.Dataset, cmap Colormap) *TemperatureLayer {
	return &TemperatureLayer{data: data, cmap: cmap}
}

func (l *TemperatureLayer) Name() string { return "temperature" }

// TimeRange: rings never widen the radial window.
func (l *TemperatureLayer) TimeRange() (float64, float64, bool) {
	return 0, 0, false
}

func (l *TemperatureLayer) Draw(w *Wheel) error {
	if len(l.data.Temperature) == 0 {
		w.log.Warn("no temperature data available; skipping ring")
		return nil
	}

	values := dataset.FitLength(l.data.Temperature, w.NumPoints())
	l.min, l.max = minOf(values), maxOf(values)
	l.drawn = true

	timeRange := w.EndHour() - w.StartHour()
	offset := timeRange / 24 * w.Cfg.Offsets.Temperature
	bandWidth := timeRange / 24 * 0.02
	rMid := w.EndHour()/24 - offset

	w.Ring(values, l.cmap, l.min, l.max, rMid-bandWidth/2, rMid+bandWidth/2)
	return nil
}

// Footer renders the temperature colorbar with five ticks.
func (l *TemperatureLayer) Footer(w *Wheel, r FooterRect) {
	if !l.drawn {
		return
	}
	drawColorbar(w, r, l.cmap, l.min, l.max,
		"Average temperature (°C)",
		func(v float64) string { return fmt.Sprintf("%.1f°C", v) })
}
