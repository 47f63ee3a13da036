package chart

import (
	"image/color"
	"math"

	"github.com/tdewolff/canvas"
)

// Angle converts a (fractional) day index to radians, clockwise from 12
// o'clock, including the wallpaper rotation when set.
func (w *Wheel) Angle(day float64) float64 {
	return 2*math.Pi*day/float64(w.NumPoints()) + w.rotation
}

// Radius maps a day fraction (hour/24) onto the wheel. The window start sits
// at the center and the window end on the rim; values beyond the window land
// outside the dial, which the label layers use.
func (w *Wheel) Radius(frac float64) float64 {
	f0 := w.start / 24
	f1 := w.end / 24
	if f1 <= f0 {
		return 0
	}
	return (frac - f0) / (f1 - f0) * w.maxR
}

// Point converts polar chart coordinates to canvas coordinates.
func (w *Wheel) Point(theta, frac float64) (float64, float64) {
	r := w.Radius(frac)
	return w.cx + r*math.Sin(theta), w.cy + r*math.Cos(theta)
}

// Thetas returns one angle per day of the year.
func (w *Wheel) Thetas() []float64 {
	n := w.NumPoints()
	out := make([]float64, n)
	for i := range out {
		out[i] = w.Angle(float64(i))
	}
	return out
}

// ConstSeries returns an n-length series of a single value.
func ConstSeries(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// FillBetween fills the annular band between two per-day radius-fraction
// series, the polar analogue of an area fill between two curves. The band
// closes around the full circle.
func (w *Wheel) FillBetween(lower, upper []float64, col color.RGBA) {
	n := w.NumPoints()
	if len(lower) != n || len(upper) != n {
		return
	}

	p := &canvas.Path{}
	for i := 0; i < n; i++ {
		x, y := w.Point(w.Angle(float64(i)), upper[i])
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	// Close the outer ring at day zero before walking the inner ring back.
	x0, y0 := w.Point(w.Angle(0), upper[0])
	p.LineTo(x0, y0)

	for i := n - 1; i >= 0; i-- {
		x, y := w.Point(w.Angle(float64(i)), lower[i])
		p.LineTo(x, y)
	}
	xn, yn := w.Point(w.Angle(float64(n-1)), lower[n-1])
	p.LineTo(xn, yn)
	p.Close()

	w.dc.SetStrokeColor(canvas.Transparent)
	w.dc.SetFillColor(col)
	w.dc.DrawPath(0, 0, p)
}

// Ring draws a colored annular band of per-day segments, one color per day.
// rInner and rOuter are day fractions. Segments overlap slightly to hide
// seams, approximating a smooth color mesh.
func (w *Wheel) Ring(values []float64, cmap Colormap, min, max, rInner, rOuter float64) {
	n := w.NumPoints()
	step := 2 * math.Pi / float64(n)
	const overlap = 0.15 // fraction of a day step

	w.dc.SetStrokeColor(canvas.Transparent)
	for i := 0; i < n && i < len(values); i++ {
		t0 := w.Angle(float64(i)) - overlap*step
		t1 := w.Angle(float64(i)+1) + overlap*step

		p := &canvas.Path{}
		x, y := w.Point(t0, rOuter)
		p.MoveTo(x, y)
		x, y = w.Point(t1, rOuter)
		p.LineTo(x, y)
		x, y = w.Point(t1, rInner)
		p.LineTo(x, y)
		x, y = w.Point(t0, rInner)
		p.LineTo(x, y)
		p.Close()

		w.dc.SetFillColor(cmap.At(values[i], min, max))
		w.dc.DrawPath(0, 0, p)
	}
}

// RadialLine strokes a line along one angle between two day fractions.
func (w *Wheel) RadialLine(theta, fracFrom, fracTo float64, col color.RGBA, width float64) {
	p := &canvas.Path{}
	x, y := w.Point(theta, fracFrom)
	p.MoveTo(x, y)
	x, y = w.Point(theta, fracTo)
	p.LineTo(x, y)

	w.dc.SetFillColor(canvas.Transparent)
	w.dc.SetStrokeColor(col)
	w.dc.SetStrokeWidth(width)
	w.dc.DrawPath(0, 0, p)
	w.dc.SetDashes(0)
}

// Polyline strokes a curve through polar points, used for the activity
// distance spirals.
func (w *Wheel) Polyline(thetas, fracs []float64, col color.RGBA, width float64, dashes ...float64) {
	if len(thetas) < 2 || len(thetas) != len(fracs) {
		return
	}

	p := &canvas.Path{}
	for i := range thetas {
		x, y := w.Point(thetas[i], fracs[i])
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}

	w.dc.SetFillColor(canvas.Transparent)
	w.dc.SetStrokeColor(col)
	w.dc.SetStrokeWidth(width)
	if len(dashes) > 0 {
		w.dc.SetDashes(0, dashes...)
	}
	w.dc.DrawPath(0, 0, p)
	w.dc.SetDashes(0)
}

// CircleMarker fills a small dot at a polar position.
func (w *Wheel) CircleMarker(theta, frac, radius float64, col color.RGBA) {
	x, y := w.Point(theta, frac)
	w.dc.SetStrokeColor(canvas.Transparent)
	w.dc.SetFillColor(col)
	w.dc.DrawPath(x, y, canvas.Circle(radius))
}

// TickRing strokes a faint concentric circle at a day fraction, the hour
// grid's graticule.
func (w *Wheel) TickRing(frac float64, col color.RGBA, width float64) {
	w.dc.SetFillColor(canvas.Transparent)
	w.dc.SetStrokeColor(col)
	w.dc.SetStrokeWidth(width)
	w.dc.DrawPath(w.cx, w.cy, canvas.Circle(w.Radius(frac)))
}

// TangentialRotation returns the text rotation (degrees, counterclockwise)
// that aligns a label with the rim at the given angle.
func TangentialRotation(theta float64) float64 {
	deg := theta * 180 / math.Pi
	r := math.Mod(-deg+180, 360)
	if r < 0 {
		r += 360
	}
	return r - 180
}

// Text draws a centered label at a polar position, rotated in canvas degrees.
func (w *Wheel) Text(theta, frac float64, s string, face *canvas.FontFace, rotDeg float64) {
	x, y := w.Point(theta, frac)
	w.drawRotatedText(x, y, s, face, rotDeg, canvas.Center)
}

func (w *Wheel) drawAnchoredText(x, y float64, s string, face *canvas.FontFace, align canvas.TextAlign) {
	w.drawRotatedText(x, y, s, face, 0, align)
}

func (w *Wheel) drawRotatedText(x, y float64, s string, face *canvas.FontFace, rotDeg float64, align canvas.TextAlign) {
	txt := canvas.NewTextLine(face, s, align)
	if rotDeg == 0 {
		w.dc.DrawText(x, y, txt)
		return
	}
	w.dc.Push()
	w.dc.Translate(x, y)
	w.dc.Rotate(rotDeg)
	w.dc.DrawText(0, 0, txt)
	w.dc.Pop()
}
