package chart

import (
	"strconv"

	"github.com/yearwheel/yearwheel/internal/config"
)

// SundaysLayer writes the day-of-month number at every Sunday's angle just
// inside the rim.
type SundaysLayer struct{}

func NewSundaysLayer() *SundaysLayer { return &SundaysLayer{} }

func (l *SundaysLayer) Name() string { return "sundays" }

func (l *SundaysLayer) TimeRange() (float64, float64, bool) {
	return 0, 0, false
}

func (l *SundaysLayer) Draw(w *Wheel) error {
	year := w.Cfg.Year
	n := w.NumPoints()
	days := config.DaysInMonth(year)

	timeRange := w.EndHour() - w.StartHour()
	labelFrac := w.EndHour()/24 - timeRange/24*0.018

	face := w.Fonts.Face(14, Hex(w.Cfg.Colors.SundayLabel), false)

	for day := FirstSunday(year); day < n; day += 7 {
		// Center the label on the day's noon slice.
		theta := w.Angle(float64(day) + 0.5)
		w.Text(theta, labelFrac, strconv.Itoa(MonthDay(days, day)), face, TangentialRotation(theta))
	}
	return nil
}

// MonthDay converts a zero-based day-of-year index into the day number
// within its month.
func MonthDay(daysInMonth []int, dayIndex int) int {
	cum := 0
	for _, d := range daysInMonth {
		if dayIndex < cum+d {
			return dayIndex - cum + 1
		}
		cum += d
	}
	return dayIndex - (cum - daysInMonth[len(daysInMonth)-1]) + 1
}
