package chart

// Layer is a renderable component of the wheel. Layers draw in slice order,
// so later layers paint over earlier ones.
type Layer interface {
	Name() string

	// TimeRange reports the radial window (decimal hours) this layer needs.
	// ok is false for layers that follow whatever window the others choose.
	TimeRange() (start, end float64, ok bool)

	Draw(w *Wheel) error
}

// FooterRect places a layer's footer block in canvas millimeters.
type FooterRect struct {
	X, Y, W, H float64
}

// FooterLayer is implemented by layers that contribute a legend or colorbar
// below the wheel.
type FooterLayer interface {
	Layer
	Footer(w *Wheel, r FooterRect)
}
