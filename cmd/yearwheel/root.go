package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yearwheel/yearwheel/internal/config"
	"github.com/yearwheel/yearwheel/internal/geo"
	"github.com/yearwheel/yearwheel/internal/logging"
)

// app carries the loaded configuration and logger to every subcommand.
type app struct {
	cfg *config.Config
	log *zap.Logger

	configPath string
	verbose    bool
	city       string
	year       int
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "yearwheel",
		Short:         "Render circular year calendars from sun, weather and activity data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Secrets live in .env during development; absence is fine.
			_ = godotenv.Load()

			log, err := logging.New(a.verbose)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.log = log

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.city != "" {
				cfg.City = a.city
			}
			if a.year != 0 {
				cfg.Year = a.year
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yaml", "path to configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.city, "city", "", "override the configured city")
	root.PersistentFlags().IntVar(&a.year, "year", 0, "override the configured year")

	root.AddCommand(newFetchCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newWatchCmd(a))
	return root
}

// resolveLocation prefers explicitly configured coordinates and falls back
// to the Open-Meteo geocoder.
func (a *app) resolveLocation(ctx context.Context) (geo.Location, error) {
	if ov := a.cfg.Location; ov != nil {
		loc := geo.Location{
			Name:      a.cfg.City,
			Country:   ov.Country,
			Timezone:  ov.Timezone,
			Latitude:  ov.Latitude,
			Longitude: ov.Longitude,
		}
		if loc.Timezone == "" {
			tz, err := geo.ResolveTimezone(loc.Latitude, loc.Longitude)
			if err != nil {
				return geo.Location{}, fmt.Errorf("resolve timezone: %w", err)
			}
			loc.Timezone = tz
		}
		return loc, nil
	}

	loc, err := geo.NewGeocoder(nil).Resolve(ctx, a.cfg.City)
	if err != nil {
		return geo.Location{}, err
	}
	a.log.Info("resolved city",
		zap.String("city", loc.Name),
		zap.String("country", loc.Country),
		zap.Float64("lat", loc.Latitude),
		zap.Float64("lon", loc.Longitude),
		zap.String("tz", loc.Timezone))
	return loc, nil
}
