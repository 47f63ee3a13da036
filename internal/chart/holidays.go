package chart

import (
	"strconv"

	"github.com/yearwheel/yearwheel/internal/config"
	"github.com/yearwheel/yearwheel/internal/dataset"
)

// HolidaysLayer marks holidays with a date label and a dot on the rim.
type HolidaysLayer struct {
	holidays []dataset.Holiday
}

func NewHolidaysLayer(holidays []dataset.Holiday) *HolidaysLayer {
	return &HolidaysLayer{holidays: holidays}
}

func (l *HolidaysLayer) Name() string { return "holidays" }

func (l *HolidaysLayer) TimeRange() (float64, float64, bool) {
	return 0, 0, false
}

func (l *HolidaysLayer) Draw(w *Wheel) error {
	if len(l.holidays) == 0 {
		return nil
	}

	year := w.Cfg.Year
	days := config.DaysInMonth(year)

	timeRange := w.EndHour() - w.StartHour()
	relOffset := timeRange / 24 * 0.013
	labelFrac := w.EndHour()/24 - relOffset

	labelFace := w.Fonts.Face(8, Hex(w.Cfg.Colors.HolidayLabel), false)
	markerCol := Hex(w.Cfg.Colors.HolidayMarker)

	for _, h := range l.holidays {
		if h.Date.Year() != year {
			continue
		}
		dayIndex := h.Date.YearDay() - 1
		theta := w.Angle(float64(dayIndex) + 0.5)

		w.Text(theta, labelFrac, strconv.Itoa(MonthDay(days, dayIndex)),
			labelFace, TangentialRotation(theta))
		w.CircleMarker(theta, labelFrac+relOffset, 1.2, markerCol)
	}
	return nil
}

// InYear filters holidays to one calendar year.
func InYear(holidays []dataset.Holiday, year int) []dataset.Holiday {
	var out []dataset.Holiday
	for _, h := range holidays {
		if h.Date.Year() == year {
			out = append(out, h)
		}
	}
	return out
}
