package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ringsaturn/tzf"
	"github.com/sony/gobreaker"

	"github.com/yearwheel/yearwheel/internal/fetch"
)

// ErrNotFound is returned when the geocoder has no match for a city name.
var ErrNotFound = errors.New("location not found")

// Geocoder resolves city names through the Open-Meteo geocoding API, which
// requires no API key.
type Geocoder struct {
	baseURL string
	httpCfg fetch.ClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewGeocoder creates a Geocoder. A nil client gets a sane default timeout.
func NewGeocoder(client *http.Client) *Geocoder {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Geocoder{
		baseURL: "https://geocoding-api.open-meteo.com/v1/search",
		httpCfg: fetch.ClientConfig{
			Client:  client,
			Backoff: fetch.DefaultBackoff(),
		},
		circuit: fetch.NewBreaker("geocoding"),
	}
}

// Resolve looks up a city by name and returns a fully populated Location.
func (g *Geocoder) Resolve(ctx context.Context, city string) (Location, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", city)
		values.Set("count", "1")

		u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := fetch.Do(ctx, g.httpCfg, g.circuit, buildRequest)
	if err != nil {
		return Location{}, fmt.Errorf("geocode %q: %w", city, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Country   string  `json:"country"`
			Timezone  string  `json:"timezone"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Location{}, fmt.Errorf("geocode %q: decode: %w", city, err)
	}
	if len(payload.Results) == 0 {
		return Location{}, fmt.Errorf("geocode %q: %w", city, ErrNotFound)
	}

	r := payload.Results[0]
	return Location{
		Name:      city,
		Country:   r.Country,
		Timezone:  r.Timezone,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}, nil
}

// ResolveTimezone determines the IANA timezone for raw coordinates without
// any network call. Used when the config pins coordinates explicitly.
func ResolveTimezone(lat, lon float64) (string, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return "", fmt.Errorf("init timezone finder: %w", err)
	}
	name := finder.GetTimezoneName(lon, lat)
	if name == "" {
		return "", fmt.Errorf("no timezone for %.4f,%.4f", lat, lon)
	}
	return name, nil
}
