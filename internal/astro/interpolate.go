package astro

import "fmt"

// interpolate fills missing-event days in every series. Sunrise/sunset and
// the twilight pairs can be absent around solstices at high latitudes; the
// chart needs gap-free series.
func (d *YearData) interpolate() error {
	series := [][]float64{d.Sunrise, d.Sunset, d.Noon}
	for _, s := range series {
		if err := fillGaps(s); err != nil {
			return err
		}
	}

	pairs := [][][2]float64{d.Civil, d.Nautical, d.Astro}
	for _, p := range pairs {
		dawn := make([]float64, len(p))
		dusk := make([]float64, len(p))
		for i, v := range p {
			dawn[i], dusk[i] = v[0], v[1]
		}
		if err := fillGaps(dawn); err != nil {
			return err
		}
		if err := fillGaps(dusk); err != nil {
			return err
		}
		for i := range p {
			p[i][0], p[i][1] = dawn[i], dusk[i]
		}
	}
	return nil
}

// fillGaps linearly interpolates entries equal to the missing sentinel,
// extrapolating from the nearest segment at the edges.
func fillGaps(s []float64) error {
	var valid []int
	for i, v := range s {
		if v != missing {
			valid = append(valid, i)
		}
	}
	if len(valid) == len(s) {
		return nil
	}
	if len(valid) < 2 {
		return fmt.Errorf("insufficient valid data points for interpolation (%d of %d)", len(valid), len(s))
	}

	for i, v := range s {
		if v != missing {
			continue
		}
		lo, hi := bracket(valid, i)
		x0, x1 := float64(lo), float64(hi)
		y0, y1 := s[lo], s[hi]
		s[i] = y0 + (y1-y0)*(float64(i)-x0)/(x1-x0)
	}
	return nil
}

// bracket picks the two valid indices to interpolate index i from: the
// surrounding pair inside the valid range, or the nearest two at the edges.
func bracket(valid []int, i int) (int, int) {
	if i < valid[0] {
		return valid[0], valid[1]
	}
	last := len(valid) - 1
	if i > valid[last] {
		return valid[last-1], valid[last]
	}
	for k := 0; k < last; k++ {
		if valid[k] < i && i < valid[k+1] {
			return valid[k], valid[k+1]
		}
	}
	return valid[last-1], valid[last]
}
