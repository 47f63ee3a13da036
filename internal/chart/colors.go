package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/palette/moreland"

	"github.com/yearwheel/yearwheel/internal/config"
)

// Hex parses "#rgb", "#rrggbb" or "#rrggbbaa" into a color. Invalid input
// yields opaque black; config validation rejects bad values before this.
func Hex(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

	parse := func(sub string) uint8 {
		v, err := strconv.ParseUint(sub, 16, 8)
		if err != nil {
			return 0
		}
		return uint8(v)
	}

	c := color.RGBA{A: 0xff}
	if len(s) >= 6 {
		c.R, c.G, c.B = parse(s[0:2]), parse(s[2:4]), parse(s[4:6])
	}
	if len(s) == 8 {
		c.A = parse(s[6:8])
	}
	return c
}

// WithAlpha scales a color's alpha, for dimming past-year activity strokes.
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	// Premultiply so the renderer composites translucency correctly.
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// Colormap maps a value in [min, max] to a color.
type Colormap interface {
	At(v, min, max float64) color.Color
}

// NewColormap builds a colormap from config: a named diverging map from
// gonum's moreland palettes, or a linear gradient over custom hex stops.
func NewColormap(spec config.ColormapSpec) (Colormap, error) {
	if len(spec.Stops) > 0 {
		stops := make([]color.RGBA, len(spec.Stops))
		for i, s := range spec.Stops {
			stops[i] = Hex(s)
		}
		return &gradientMap{stops: stops}, nil
	}

	switch strings.ToLower(spec.Name) {
	case "smoothbluered", "coolwarm":
		return &morelandMap{build: func() paletteColorMap { return moreland.SmoothBlueRed() }}, nil
	case "blackbody":
		return &morelandMap{build: func() paletteColorMap { return moreland.BlackBody() }}, nil
	case "kindlmann":
		return &morelandMap{build: func() paletteColorMap { return moreland.Kindlmann() }}, nil
	case "extendedkindlmann":
		return &morelandMap{build: func() paletteColorMap { return moreland.ExtendedKindlmann() }}, nil
	default:
		return nil, fmt.Errorf("unknown colormap %q", spec.Name)
	}
}

type morelandMap struct {
	build func() paletteColorMap
}

// paletteColorMap is the subset of gonum's palette.ColorMap the chart uses.
type paletteColorMap interface {
	At(float64) (color.Color, error)
	SetMin(float64)
	SetMax(float64)
}

func (m *morelandMap) At(v, min, max float64) color.Color {
	cm := m.build()
	cm.SetMin(min)
	cm.SetMax(max)
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	c, err := cm.At(v)
	if err != nil {
		return color.Black
	}
	return c
}

type gradientMap struct {
	stops []color.RGBA
}

func (g *gradientMap) At(v, min, max float64) color.Color {
	if len(g.stops) == 1 || max <= min {
		return g.stops[0]
	}

	t := (v - min) / (max - min)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	segs := float64(len(g.stops) - 1)
	pos := t * segs
	i := int(pos)
	if i >= len(g.stops)-1 {
		i = len(g.stops) - 2
	}
	f := pos - float64(i)

	a, b := g.stops[i], g.stops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*f)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}
