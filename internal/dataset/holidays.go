package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Holiday is a dated label drawn on the wheel's rim.
type Holiday struct {
	Name string
	Date time.Time
}

type holidayFile struct {
	Holidays []struct {
		Name string `json:"name"`
		Date string `json:"date"`
	} `json:"holidays"`
}

// LoadHolidays reads holidays.json from the data directory. A missing file
// is not an error; the layer simply has nothing to draw.
func LoadHolidays(dir string) ([]Holiday, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "holidays.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read holidays: %w", err)
	}

	var f holidayFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse holidays: %w", err)
	}

	out := make([]Holiday, 0, len(f.Holidays))
	for _, h := range f.Holidays {
		d, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday %q: bad date %q: %w", h.Name, h.Date, err)
		}
		out = append(out, Holiday{Name: h.Name, Date: d})
	}
	return out, nil
}
