package chart

import (
	"image/color"
	"os"
	"path/filepath"

	"github.com/tdewolff/canvas"
	"go.uber.org/zap"
)

// Fonts wraps the chart's typeface with a system fallback.
type Fonts struct {
	family *canvas.FontFamily
}

// LoadFonts loads Arvo from the font directory when present, falling back
// to a system serif.
func LoadFonts(dir string, log *zap.Logger) *Fonts {
	family := canvas.NewFontFamily("arvo")

	loaded := false
	if dir != "" {
		regular := filepath.Join(dir, "Arvo-Regular.ttf")
		bold := filepath.Join(dir, "Arvo-Bold.ttf")
		if _, err := os.Stat(regular); err == nil {
			if err := family.LoadFontFile(regular, canvas.FontRegular); err == nil {
				loaded = true
			} else if log != nil {
				log.Warn("load font file failed", zap.String("path", regular), zap.Error(err))
			}
		}
		if _, err := os.Stat(bold); err == nil {
			if err := family.LoadFontFile(bold, canvas.FontBold); err != nil && log != nil {
				log.Warn("load font file failed", zap.String("path", bold), zap.Error(err))
			}
		}
	}

	if !loaded {
		if err := family.LoadSystemFont("serif", canvas.FontRegular); err != nil && log != nil {
			log.Warn("system font fallback failed", zap.Error(err))
		}
	}
	return &Fonts{family: family}
}

// Face returns a font face in the given size and color.
func (f *Fonts) Face(size float64, col color.Color, bold bool) *canvas.FontFace {
	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	return f.family.Face(size, col, style, canvas.FontNormal)
}
