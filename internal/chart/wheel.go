// Package chart renders circular year-calendar charts. The wheel maps
// day-of-year to a clockwise angle starting at 12 o'clock and hour-of-day to
// radius, and composes independent layers onto one polar canvas.
package chart

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
	"go.uber.org/zap"

	"github.com/yearwheel/yearwheel/internal/config"
	"github.com/yearwheel/yearwheel/internal/dataset"
	"github.com/yearwheel/yearwheel/internal/geo"
)

// Standard page geometry, millimeters.
const (
	pageW = 620.0
	pageH = 800.0

	wheelCX   = 310.0
	wheelCY   = 440.0
	wheelMaxR = 230.0

	footerTop  = 150.0
	footerStep = 48.0

	standardDPMM = 300.0 / 25.4
)

var monthLabels = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// Wheel is the shared polar plotting context all layers draw into.
type Wheel struct {
	Cfg   *config.Config
	Data  *dataset.Dataset
	Loc   geo.Location
	Fonts *Fonts

	layers []Layer
	log    *zap.Logger

	pageW, pageH   float64
	cx, cy, maxR   float64
	rotation       float64 // radians added clockwise so another month sits on top
	start, end     float64 // radial window in decimal hours
	wallpaper      bool
	rasterDPMM     float64

	dc *canvas.Context
	c  *canvas.Canvas

	// now is swappable for tests of the wallpaper rotation.
	now func() time.Time
}

// NewWheel assembles a standard square chart with title and footer.
func NewWheel(cfg *config.Config, data *dataset.Dataset, loc geo.Location, fonts *Fonts, log *zap.Logger) *Wheel {
	return &Wheel{
		Cfg:        cfg,
		Data:       data,
		Loc:        loc,
		Fonts:      fonts,
		log:        log,
		pageW:      pageW,
		pageH:      pageH,
		cx:         wheelCX,
		cy:         wheelCY,
		maxR:       wheelMaxR,
		rasterDPMM: standardDPMM,
		now:        time.Now,
	}
}

// NewWallpaperWheel assembles the 16:9 variant: the wheel's bounding square
// is sized as a fraction of the canvas height and positioned by the config
// rectangle, optionally rotated so the current month sits at 12 o'clock.
func NewWallpaperWheel(cfg *config.Config, data *dataset.Dataset, loc geo.Location, fonts *Fonts, log *zap.Logger) *Wheel {
	const dpmm = 96.0 / 25.4 // pixel-exact at 96 dpi

	w := &Wheel{
		Cfg:        cfg,
		Data:       data,
		Loc:        loc,
		Fonts:      fonts,
		log:        log,
		pageW:      float64(cfg.Wallpaper.Width) / dpmm,
		pageH:      float64(cfg.Wallpaper.Height) / dpmm,
		wallpaper:  true,
		rasterDPMM: dpmm,
		now:        time.Now,
	}

	side := cfg.Wallpaper.Size * w.pageH
	w.cx = cfg.Wallpaper.Left*w.pageW + side/2
	w.cy = cfg.Wallpaper.Bottom*w.pageH + side/2
	w.maxR = side / 2

	if cfg.Wallpaper.RotateCurrentMonth {
		w.rotation = w.currentMonthRotation()
	}
	return w
}

// AddLayers appends layers; draw order follows append order.
func (w *Wheel) AddLayers(layers ...Layer) {
	w.layers = append(w.layers, layers...)
}

// NumPoints is the number of angular steps: one per day of the year.
func (w *Wheel) NumPoints() int {
	return w.Cfg.DaysInYear()
}

// StartHour and EndHour bound the radial window.
func (w *Wheel) StartHour() float64 { return w.start }
func (w *Wheel) EndHour() float64   { return w.end }

// Render composes all layers and writes one artifact per configured format.
func (w *Wheel) Render(name string) error {
	w.computeWindow()

	w.c = canvas.New(w.pageW, w.pageH)
	w.dc = canvas.NewContext(w.c)

	w.drawBackground()

	for _, layer := range w.layers {
		if err := layer.Draw(w); err != nil {
			return fmt.Errorf("layer %s: %w", layer.Name(), err)
		}
	}

	w.drawTitle()
	if !w.wallpaper {
		w.drawFooters()
	}

	if err := os.MkdirAll(w.Cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, format := range w.Cfg.Output.Formats {
		path := filepath.Join(w.Cfg.Output.Dir, name+"."+format)
		var err error
		if format == "png" {
			err = renderers.Write(path, w.c, canvas.DPMM(w.rasterDPMM))
		} else {
			err = renderers.Write(path, w.c)
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		w.log.Info("wrote chart", zap.String("path", path))
	}
	return nil
}

// computeWindow unions the layers' radial windows, defaulting to a full day.
func (w *Wheel) computeWindow() {
	w.start, w.end = math.Inf(1), math.Inf(-1)
	for _, layer := range w.layers {
		if s, e, ok := layer.TimeRange(); ok {
			w.start = math.Min(w.start, s)
			w.end = math.Max(w.end, e)
		}
	}
	if math.IsInf(w.start, 1) {
		w.start = 0
	}
	if math.IsInf(w.end, -1) {
		w.end = 24
	}
}

func (w *Wheel) drawBackground() {
	w.dc.SetFillColor(Hex(w.Cfg.Colors.Background))
	w.dc.DrawPath(0, 0, canvas.Rectangle(w.pageW, w.pageH))

	// Dial disc behind the data layers.
	w.dc.SetFillColor(Hex(w.Cfg.Colors.Dial))
	w.dc.DrawPath(w.cx, w.cy, canvas.Circle(w.maxR))
}

func (w *Wheel) drawTitle() {
	col := Hex(w.Cfg.Colors.TitleText)
	if w.wallpaper {
		// Right-aligned block in the top-right corner.
		x := w.pageW * 0.95
		w.drawAnchoredText(x, w.pageH*0.90, fmt.Sprintf("%d", w.Data.Year), w.Fonts.Face(36, col, false), canvas.Right)
		w.drawAnchoredText(x, w.pageH*0.84, w.Loc.Name, w.Fonts.Face(48, col, true), canvas.Right)
		w.drawAnchoredText(x, w.pageH*0.80, w.Loc.FormatCoordinates(), w.Fonts.Face(16, col, false), canvas.Right)
		return
	}

	w.drawAnchoredText(w.cx, w.pageH-30, fmt.Sprintf("%d", w.Data.Year), w.Fonts.Face(48, col, false), canvas.Center)
	w.drawAnchoredText(w.cx, w.pageH-72, w.Loc.Name, w.Fonts.Face(64, col, true), canvas.Center)
	w.drawAnchoredText(w.cx, w.pageH-100, w.Loc.FormatCoordinates(), w.Fonts.Face(20, col, false), canvas.Center)
}

// drawFooters stacks each footer-capable layer's block below the wheel.
func (w *Wheel) drawFooters() {
	y := footerTop
	for _, layer := range w.layers {
		fl, ok := layer.(FooterLayer)
		if !ok {
			continue
		}
		fl.Footer(w, FooterRect{
			X: w.pageW * 0.1,
			Y: y,
			W: w.pageW * 0.8,
			H: footerStep - 8,
		})
		y -= footerStep
	}
}

// currentMonthRotation returns the clockwise angle that moves the current
// month's start to the top of the wheel.
func (w *Wheel) currentMonthRotation() float64 {
	days := config.DaysInMonth(w.Cfg.Year)
	month := int(w.now().Month())

	before := 0
	for i := 0; i < month-1; i++ {
		before += days[i]
	}
	return -2 * math.Pi * float64(before) / float64(w.NumPoints())
}
