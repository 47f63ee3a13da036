package chart

import (
	"time"

	"github.com/yearwheel/yearwheel/internal/config"
)

// MonthsLayer draws month labels just outside the rim and the dividing
// lines between months.
type MonthsLayer struct{}

func NewMonthsLayer() *MonthsLayer { return &MonthsLayer{} }

func (l *MonthsLayer) Name() string { return "months" }

func (l *MonthsLayer) TimeRange() (float64, float64, bool) {
	return 0, 0, false
}

func (l *MonthsLayer) Draw(w *Wheel) error {
	days := config.DaysInMonth(w.Cfg.Year)
	n := float64(w.NumPoints())

	timeRange := w.EndHour() - w.StartHour()
	labelFrac := w.EndHour()/24 + timeRange/24*w.Cfg.Offsets.Months

	labelFace := w.Fonts.Face(22, Hex(w.Cfg.Colors.MonthLabel), true)
	dividerCol := Hex(w.Cfg.Colors.Divider)

	cum := 0
	for i, label := range monthLabels {
		mid := float64(cum) + float64(days[i])/2
		theta := w.Angle(mid)
		w.Text(theta, labelFrac, label, labelFace, TangentialRotation(theta))

		cum += days[i]
		lineTheta := w.Angle(float64(cum))
		if i == len(monthLabels)-1 {
			lineTheta = w.Angle(n)
		}
		w.RadialLine(lineTheta, w.StartHour()/24, w.EndHour()/24, dividerCol, 0.18)
	}
	return nil
}

// FirstSunday returns the zero-based day index of the year's first Sunday.
func FirstSunday(year int) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	// time.Weekday counts Sunday as 0; convert to Monday-based before the
	// distance-to-Sunday arithmetic.
	weekday := (int(jan1.Weekday()) + 6) % 7
	return (6 - weekday) % 7
}
