package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration loaded from config.yaml.
type Config struct {
	City string `yaml:"city" validate:"required"`
	Year int    `yaml:"year" validate:"required,gte=1900,lte=2200"`

	// Smoothen enables Fourier low-pass smoothing of daily series.
	Smoothen bool `yaml:"smoothen"`

	// Interval is the hour-grid spacing in hours (0.25 = 15 minutes).
	Interval float64 `yaml:"interval" validate:"gt=0,lte=6"`

	Colors  Colors  `yaml:"colors" validate:"required"`
	Offsets Offsets `yaml:"offsets"`
	Output  Output  `yaml:"output"`
	Layers  Layers  `yaml:"layers"`

	Wallpaper Wallpaper `yaml:"wallpaper"`
	Strava    Strava    `yaml:"strava"`

	// Location overrides geocoding when coordinates are given explicitly.
	Location *LocationOverride `yaml:"location"`

	DataDir string `yaml:"data_dir"`
	FontDir string `yaml:"font_dir"`
}

// Colors names every paint used by the chart. Temperature and Precipitation
// are colormap specs: either a named gonum/moreland map or a list of hex stops.
type Colors struct {
	Background string `yaml:"background" validate:"required,hexcolor"`
	Dial       string `yaml:"dial" validate:"required,hexcolor"`

	Night    string `yaml:"night" validate:"required,hexcolor"`
	Daylight string `yaml:"daylight" validate:"required,hexcolor"`
	Civil    string `yaml:"civil" validate:"required,hexcolor"`
	Nautical string `yaml:"nautical" validate:"required,hexcolor"`
	Astro    string `yaml:"astro" validate:"required,hexcolor"`

	MonthLabel    string `yaml:"month_label" validate:"required,hexcolor"`
	Divider       string `yaml:"divider" validate:"required,hexcolor"`
	TimeLabel     string `yaml:"time_label" validate:"required,hexcolor"`
	SundayLabel   string `yaml:"sunday_label" validate:"required,hexcolor"`
	HolidayLabel  string `yaml:"holiday_label"`
	HolidayMarker string `yaml:"holiday_marker"`
	TitleText     string `yaml:"title_text" validate:"required,hexcolor"`

	Temperature   ColormapSpec `yaml:"temperature"`
	Precipitation ColormapSpec `yaml:"precipitation"`

	Run  string `yaml:"run"`
	Walk string `yaml:"walk"`
}

// ColormapSpec selects a colormap by name or as custom gradient stops.
type ColormapSpec struct {
	Name  string   `yaml:"name"`
	Stops []string `yaml:"stops" validate:"omitempty,dive,hexcolor"`
}

// Offsets position the data rings relative to the outer rim, as fractions
// of the radial time range.
type Offsets struct {
	Temperature   float64 `yaml:"temperature"`
	Precipitation float64 `yaml:"precipitation"`
	Months        float64 `yaml:"months"`
}

// Output controls artifact destinations.
type Output struct {
	Dir     string   `yaml:"dir"`
	Formats []string `yaml:"formats" validate:"omitempty,dive,oneof=pdf png svg"`
}

// Layers toggles optional layers per chart.
type Layers struct {
	Sundays       bool `yaml:"sundays"`
	Holidays      bool `yaml:"holidays"`
	Precipitation bool `yaml:"precipitation"`
	Strava        bool `yaml:"strava"`
}

// Wallpaper configures the 16:9 variant.
type Wallpaper struct {
	Width  int `yaml:"width" validate:"omitempty,gt=0"`
	Height int `yaml:"height" validate:"omitempty,gt=0"`

	// Position of the wheel's bounding square as fractions of the canvas;
	// values may run off-canvas to crop the wheel.
	Left   float64 `yaml:"left"`
	Bottom float64 `yaml:"bottom"`
	Size   float64 `yaml:"size"`

	// RotateCurrentMonth puts the current month at 12 o'clock.
	RotateCurrentMonth bool `yaml:"rotate_current_month"`
}

// Strava configures the activity layer and fetcher.
type Strava struct {
	// ClientID and ClientSecret come from the environment, not YAML.
	ClientID     string `yaml:"-"`
	ClientSecret string `yaml:"-"`

	Types      []string `yaml:"types"`
	TargetKm   float64  `yaml:"target_km"`
	TokensFile string   `yaml:"tokens_file"`
}

// LocationOverride pins coordinates so no geocoding call is needed.
type LocationOverride struct {
	Latitude  float64 `yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `yaml:"longitude" validate:"gte=-180,lte=180"`
	Timezone  string  `yaml:"timezone"`
	Country   string  `yaml:"country"`
}

// Load reads and validates configuration from the given YAML file, applying
// defaults and environment overrides.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Year == 0 {
		c.Year = time.Now().Year()
	}
	if c.Interval == 0 {
		c.Interval = 0.25
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "out"
	}
	if len(c.Output.Formats) == 0 {
		c.Output.Formats = []string{"pdf", "png"}
	}
	if c.Offsets.Temperature == 0 {
		c.Offsets.Temperature = 0.062
	}
	if c.Offsets.Precipitation == 0 {
		c.Offsets.Precipitation = 0.042
	}
	if c.Offsets.Months == 0 {
		c.Offsets.Months = 0.03
	}
	if c.Colors.HolidayLabel == "" {
		c.Colors.HolidayLabel = "#ff0000"
	}
	if c.Colors.HolidayMarker == "" {
		c.Colors.HolidayMarker = c.Colors.HolidayLabel
	}
	if c.Colors.Run == "" {
		c.Colors.Run = "#d22d2d"
	}
	if c.Colors.Walk == "" {
		c.Colors.Walk = "#2d55d2"
	}
	if c.Colors.Temperature.Name == "" && len(c.Colors.Temperature.Stops) == 0 {
		c.Colors.Temperature.Name = "smoothbluered"
	}
	if c.Colors.Precipitation.Name == "" && len(c.Colors.Precipitation.Stops) == 0 {
		c.Colors.Precipitation.Stops = []string{"#f7fbff", "#2171b5"}
	}
	if c.Wallpaper.Width == 0 {
		c.Wallpaper.Width = 3840
	}
	if c.Wallpaper.Height == 0 {
		c.Wallpaper.Height = 2160
	}
	if c.Wallpaper.Size == 0 {
		c.Wallpaper.Size = 1.2
		c.Wallpaper.Left = -0.2
		c.Wallpaper.Bottom = -0.3
	}
	if len(c.Strava.Types) == 0 {
		c.Strava.Types = []string{"Run", "Walk"}
	}
	if c.Strava.TargetKm == 0 {
		c.Strava.TargetKm = 1000
	}
	if c.Strava.TokensFile == "" {
		c.Strava.TokensFile = "strava_tokens.json"
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("YEARWHEEL_CITY"); v != "" {
		c.City = v
	}
	if v := os.Getenv("YEARWHEEL_YEAR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Year = n
		}
	}
	c.Strava.ClientID = os.Getenv("STRAVA_CLIENT_ID")
	c.Strava.ClientSecret = os.Getenv("STRAVA_CLIENT_SECRET")
}

// DaysInYear returns 365 or 366 depending on the configured year.
func (c *Config) DaysInYear() int {
	if IsLeap(c.Year) {
		return 366
	}
	return 365
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the month lengths for year.
func DaysInMonth(year int) []int {
	days := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if IsLeap(year) {
		days[1] = 29
	}
	return days
}
