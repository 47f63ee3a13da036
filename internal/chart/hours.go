package chart

import (
	"fmt"

	"github.com/tdewolff/canvas"
)

// HoursLayer draws faint concentric tick rings over the active radial
// window with clock labels along the 12 o'clock axis.
type HoursLayer struct{}

func NewHoursLayer() *HoursLayer { return &HoursLayer{} }

func (l *HoursLayer) Name() string { return "hours" }

func (l *HoursLayer) TimeRange() (float64, float64, bool) {
	return 0, 0, false
}

func (l *HoursLayer) Draw(w *Wheel) error {
	interval := w.Cfg.Interval
	ticks := HourTicks(w.StartHour(), w.EndHour(), interval)
	labels := HourLabels(w.StartHour(), w.EndHour(), interval)

	tickCol := WithAlpha(Hex("#808080"), 0.4)
	face := w.Fonts.Face(6, Hex(w.Cfg.Colors.TimeLabel), false)

	for i, frac := range ticks {
		w.TickRing(frac, tickCol, 0.1)
		if i < len(labels) && labels[i] != "" {
			x, y := w.Point(0, frac)
			w.drawAnchoredText(x+2, y, labels[i], face, canvas.Left)
		}
	}
	return nil
}

// HourTicks returns the radius fractions for each grid ring between start
// and end at the given interval in hours.
func HourTicks(start, end, interval float64) []float64 {
	var out []float64
	for h := start; h < end; h += interval {
		out = append(out, h/24)
	}
	return out
}

// HourLabels returns clock labels matching HourTicks. The innermost ring is
// unlabeled and labels stop short of the rim, mirroring the original dial.
func HourLabels(start, end, interval float64) []string {
	labels := []string{""}
	for t := start + interval; t < end-interval; t += interval {
		hours := int(t)
		minutes := int((t - float64(hours)) * 60)
		ampm := "AM"
		if hours >= 12 {
			ampm = "PM"
		}
		clock := (hours+11)%12 + 1
		labels = append(labels, fmt.Sprintf("%d:%02d%s", clock, minutes, ampm))
	}
	return labels
}
