package chart

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yearwheel/yearwheel/internal/config"
	"github.com/yearwheel/yearwheel/internal/dataset"
	"github.com/yearwheel/yearwheel/internal/geo"
	"github.com/yearwheel/yearwheel/internal/strava"
)

// Inputs bundles everything the chart variants draw from.
type Inputs struct {
	Cfg        *config.Config
	Data       *dataset.Dataset
	Loc        geo.Location
	Fonts      *Fonts
	Holidays   []dataset.Holiday
	Activities []strava.Activity
	Log        *zap.Logger
}

// Dawn builds the chart zoomed to the morning twilight window.
func Dawn(in Inputs) (*Wheel, error) {
	w := NewWheel(in.Cfg, in.Data, in.Loc, in.Fonts, in.Log)
	layers, err := dawnLayers(in)
	if err != nil {
		return nil, err
	}
	layers = append(layers, decorationLayers(in)...)
	w.AddLayers(layers...)
	return w, nil
}

// Day builds the full-day chart with sunrise and sunset curves.
func Day(in Inputs) (*Wheel, error) {
	w := NewWheel(in.Cfg, in.Data, in.Loc, in.Fonts, in.Log)

	layers := []Layer{NewDayLayer(in.Data)}
	if in.Data.HasWeather() {
		tcm, err := NewColormap(in.Cfg.Colors.Temperature)
		if err != nil {
			return nil, fmt.Errorf("temperature colormap: %w", err)
		}
		layers = append(layers, NewTemperatureLayer(in.Data, tcm))
		if in.Cfg.Layers.Precipitation {
			pcm, err := NewColormap(in.Cfg.Colors.Precipitation)
			if err != nil {
				return nil, fmt.Errorf("precipitation colormap: %w", err)
			}
			layers = append(layers, NewPrecipitationLayer(in.Data, pcm))
		}
	}
	layers = append(layers, decorationLayers(in)...)

	w.AddLayers(layers...)
	return w, nil
}

// Wallpaper builds the 16:9 desktop variant on the dawn window. It is the
// only variant carrying the activity layer.
func Wallpaper(in Inputs) (*Wheel, error) {
	w := NewWallpaperWheel(in.Cfg, in.Data, in.Loc, in.Fonts, in.Log)
	layers, err := dawnLayers(in)
	if err != nil {
		return nil, err
	}
	if in.Cfg.Layers.Strava && len(in.Activities) > 0 {
		layers = append(layers, NewActivityLayer(in.Activities))
	}
	layers = append(layers, decorationLayers(in)...)
	w.AddLayers(layers...)
	return w, nil
}

// dawnLayers are the data layers shared by the dawn and wallpaper variants.
func dawnLayers(in Inputs) ([]Layer, error) {
	layers := []Layer{NewDawnLayer(in.Data)}
	if in.Data.HasWeather() {
		tcm, err := NewColormap(in.Cfg.Colors.Temperature)
		if err != nil {
			return nil, fmt.Errorf("temperature colormap: %w", err)
		}
		layers = append(layers, NewTemperatureLayer(in.Data, tcm))
	}
	return layers, nil
}

// decorationLayers are the text and tick layers common to every variant.
// They come last so labels paint over the data rings.
func decorationLayers(in Inputs) []Layer {
	layers := []Layer{NewMonthsLayer(), NewHoursLayer()}
	if in.Cfg.Layers.Sundays {
		layers = append(layers, NewSundaysLayer())
	}
	if in.Cfg.Layers.Holidays && len(in.Holidays) > 0 {
		layers = append(layers, NewHolidaysLayer(in.Holidays))
	}
	return layers
}
