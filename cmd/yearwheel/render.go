package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yearwheel/yearwheel/internal/chart"
	"github.com/yearwheel/yearwheel/internal/dataset"
	"github.com/yearwheel/yearwheel/internal/geo"
	"github.com/yearwheel/yearwheel/internal/strava"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "render {dawn|day|wallpaper}",
		Short:     "Render a chart from the stored dataset",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"dawn", "day", "wallpaper"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderVariant(a, args[0])
		},
	}
	return cmd
}

func renderVariant(a *app, variant string) error {
	in, err := loadInputs(a)
	if err != nil {
		return err
	}

	var w *chart.Wheel
	switch variant {
	case "dawn":
		w, err = chart.Dawn(in)
	case "day":
		w, err = chart.Day(in)
	case "wallpaper":
		w, err = chart.Wallpaper(in)
	default:
		return fmt.Errorf("unknown chart %q", variant)
	}
	if err != nil {
		return err
	}

	name := fmt.Sprintf("%s_%s", a.cfg.City, variant)
	return w.Render(name)
}

// loadInputs gathers everything the chart variants need from disk.
func loadInputs(a *app) (chart.Inputs, error) {
	store := dataset.NewStore(a.cfg.DataDir)
	ds, err := store.Load(a.cfg.City)
	if err != nil {
		return chart.Inputs{}, fmt.Errorf("%w (run `yearwheel fetch sun` first)", err)
	}
	if err := ds.Validate(); err != nil {
		return chart.Inputs{}, fmt.Errorf("dataset %s: %w", store.Path(a.cfg.City), err)
	}

	loc := geo.Location{
		Name:      a.cfg.City,
		Latitude:  ds.Coordinates.Latitude,
		Longitude: ds.Coordinates.Longitude,
	}

	in := chart.Inputs{
		Cfg:   a.cfg,
		Data:  ds,
		Loc:   loc,
		Fonts: chart.LoadFonts(a.cfg.FontDir, a.log),
		Log:   a.log,
	}

	if a.cfg.Layers.Holidays {
		holidays, err := dataset.LoadHolidays(a.cfg.DataDir)
		if err != nil {
			return chart.Inputs{}, err
		}
		in.Holidays = chart.InYear(holidays, a.cfg.Year)
	}
	if a.cfg.Layers.Strava {
		acts, err := strava.LoadActivities(a.cfg.DataDir)
		if err != nil {
			return chart.Inputs{}, err
		}
		in.Activities = acts
	}
	return in, nil
}
