package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yearwheel/yearwheel/internal/astro"
	"github.com/yearwheel/yearwheel/internal/config"
	"github.com/yearwheel/yearwheel/internal/dataset"
	"github.com/yearwheel/yearwheel/internal/strava"
	"github.com/yearwheel/yearwheel/internal/weather/providers"
)

func newFetchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch and persist the data the charts are drawn from",
	}
	cmd.AddCommand(newFetchSunCmd(a))
	cmd.AddCommand(newFetchWeatherCmd(a))
	cmd.AddCommand(newFetchStravaCmd(a))
	return cmd
}

func newFetchSunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sun",
		Short: "Compute sunrise, sunset, twilight and moon phase series",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			loc, err := a.resolveLocation(ctx)
			if err != nil {
				return err
			}

			data, err := astro.NewCalculator(loc, a.cfg.Year, a.log).ComputeYear()
			if err != nil {
				return err
			}

			store := dataset.NewStore(a.cfg.DataDir)
			ds, err := store.LoadOrNew(a.cfg.City)
			if err != nil {
				return err
			}

			ds.Year = a.cfg.Year
			ds.Coordinates = dataset.Coordinates{
				Latitude:  loc.Latitude,
				Longitude: loc.Longitude,
			}
			ds.DaysInMonth = config.DaysInMonth(a.cfg.Year)
			ds.Sunrise = data.Sunrise
			ds.Sunset = data.Sunset
			ds.Noon = data.Noon
			ds.MoonPhases = data.MoonPhases
			ds.Civil = data.Civil
			ds.Nautical = data.Nautical
			ds.Astro = data.Astro

			if err := store.Save(a.cfg.City, ds); err != nil {
				return err
			}
			a.log.Info("sun data saved",
				zap.String("path", store.Path(a.cfg.City)),
				zap.Int("days", len(ds.Sunrise)))
			return nil
		},
	}
}

func newFetchWeatherCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "weather",
		Short: "Fetch daily temperature and precipitation for the year",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			loc, err := a.resolveLocation(ctx)
			if err != nil {
				return err
			}

			provider := providers.NewOpenMeteoProvider(nil)
			series, err := provider.FetchDaily(ctx, loc, a.cfg.Year)
			if err != nil {
				return err
			}

			store := dataset.NewStore(a.cfg.DataDir)
			ds, err := store.LoadOrNew(a.cfg.City)
			if err != nil {
				return err
			}
			if ds.Year == 0 {
				ds.Year = a.cfg.Year
				ds.Coordinates = dataset.Coordinates{
					Latitude:  loc.Latitude,
					Longitude: loc.Longitude,
				}
				ds.DaysInMonth = config.DaysInMonth(a.cfg.Year)
			}

			ds.Temperature = series.Temperature
			ds.Precipitation = series.Precipitation
			ds.WeatherDataYear = series.Year

			if err := store.Save(a.cfg.City, ds); err != nil {
				return err
			}
			a.log.Info("weather data saved",
				zap.String("provider", provider.Name()),
				zap.Int("weather_year", series.Year),
				zap.Int("days", len(series.Temperature)))
			return nil
		},
	}
}

func newFetchStravaCmd(a *app) *cobra.Command {
	var (
		incremental bool
		afterStr    string
		beforeStr   string
	)

	cmd := &cobra.Command{
		Use:   "strava",
		Short: "Fetch activities from the Strava API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if a.cfg.Strava.ClientID == "" || a.cfg.Strava.ClientSecret == "" {
				return errors.New("STRAVA_CLIENT_ID and STRAVA_CLIENT_SECRET must be set")
			}

			after := time.Date(a.cfg.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
			before := time.Date(a.cfg.Year+1, time.January, 1, 0, 0, 0, 0, time.UTC)

			if incremental {
				last, err := strava.LastActivityDate(a.cfg.DataDir)
				if err != nil {
					return err
				}
				if !last.IsZero() {
					after = last
				}
			}
			if afterStr != "" {
				t, err := time.Parse("2006-01-02", afterStr)
				if err != nil {
					return fmt.Errorf("parse --after: %w", err)
				}
				after = t
			}
			if beforeStr != "" {
				t, err := time.Parse("2006-01-02", beforeStr)
				if err != nil {
					return fmt.Errorf("parse --before: %w", err)
				}
				before = t
			}

			auth := strava.NewAuthenticator(
				a.cfg.Strava.ClientID,
				a.cfg.Strava.ClientSecret,
				a.cfg.Strava.TokensFile,
				a.log,
			)
			tok, err := auth.Token(ctx)
			if err != nil {
				return err
			}

			client := strava.NewClient(auth.Client(ctx, tok), a.log)
			acts, err := client.FetchActivities(ctx, after, before)
			if err != nil {
				return err
			}
			a.log.Info("fetched activities",
				zap.Int("count", len(acts)),
				zap.Time("after", after),
				zap.Time("before", before))

			existing, err := strava.LoadActivities(a.cfg.DataDir)
			if err != nil {
				return err
			}
			return strava.SaveActivities(a.cfg.DataDir, append(existing, acts...))
		},
	}

	cmd.Flags().BoolVar(&incremental, "incremental", false, "fetch only activities newer than the stored ones")
	cmd.Flags().StringVar(&afterStr, "after", "", "fetch activities after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&beforeStr, "before", "", "fetch activities before this date (YYYY-MM-DD)")
	return cmd
}
