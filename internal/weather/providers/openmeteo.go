// Package providers contains SeriesProvider implementations.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/yearwheel/yearwheel/internal/fetch"
	"github.com/yearwheel/yearwheel/internal/geo"
	"github.com/yearwheel/yearwheel/internal/weather"
)

// OpenMeteoProvider implements weather.SeriesProvider against the Open-Meteo
// historical archive API. No API key required.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg fetch.ClientConfig
	circuit *gobreaker.CircuitBreaker

	// now is swappable for tests.
	now func() time.Time
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &OpenMeteoProvider{
		name:    "openmeteo-archive",
		baseURL: "https://archive-api.open-meteo.com/v1/archive",
		httpCfg: fetch.ClientConfig{
			Client:  client,
			Backoff: fetch.DefaultBackoff(),
		},
		circuit: fetch.NewBreaker("openmeteo-archive"),
		now:     time.Now,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// FetchDaily fetches mean temperature and precipitation sums for a full
// year. A year without complete coverage is substituted by the most recent
// complete one so the ring always spans the whole wheel.
func (p *OpenMeteoProvider) FetchDaily(ctx context.Context, loc geo.Location, year int) (weather.DailySeries, error) {
	dataYear := p.completeYear(year)

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", loc.Latitude))
		values.Set("longitude", fmt.Sprintf("%f", loc.Longitude))
		values.Set("start_date", fmt.Sprintf("%d-01-01", dataYear))
		values.Set("end_date", fmt.Sprintf("%d-12-31", dataYear))
		values.Set("daily", "temperature_2m_mean,precipitation_sum")
		values.Set("timezone", "auto")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := fetch.Do(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.DailySeries{}, fmt.Errorf("%s: %w", p.name, err)
	}
	defer resp.Body.Close()

	var payload struct {
		Daily struct {
			Time             []string  `json:"time"`
			Temperature2mMean []float64 `json:"temperature_2m_mean"`
			PrecipitationSum []float64 `json:"precipitation_sum"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.DailySeries{}, fmt.Errorf("%s: decode: %w", p.name, err)
	}

	d := payload.Daily
	if len(d.Temperature2mMean) == 0 {
		return weather.DailySeries{}, fmt.Errorf("%s: empty temperature series for %d", p.name, dataYear)
	}
	if len(d.Temperature2mMean) != len(d.PrecipitationSum) {
		return weather.DailySeries{}, fmt.Errorf("%s: series length mismatch: %d temperature vs %d precipitation",
			p.name, len(d.Temperature2mMean), len(d.PrecipitationSum))
	}

	return weather.DailySeries{
		Year:          dataYear,
		Temperature:   d.Temperature2mMean,
		Precipitation: d.PrecipitationSum,
	}, nil
}

// completeYear returns the requested year if its data can be complete in
// the archive, otherwise the previous year. The archive trails a few days
// behind realtime, so the current year is never complete.
func (p *OpenMeteoProvider) completeYear(year int) int {
	if year >= p.now().Year() {
		return p.now().Year() - 1
	}
	return year
}
