package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	apiBaseURL = "https://www.strava.com/api/v3"
	pageSize   = 200
)

type httpDoer struct {
	inner *http.Client
}

func (d *httpDoer) Do(req *http.Request) (*http.Response, error) {
	return d.inner.Do(req)
}

// Client talks to the Strava v3 API with an authorized HTTP client.
type Client struct {
	baseURL string
	http    interface {
		Do(*http.Request) (*http.Response, error)
	}
	log *zap.Logger
}

func NewClient(doer *httpDoer, log *zap.Logger) *Client {
	return &Client{baseURL: apiBaseURL, http: doer, log: log}
}

// apiActivity is the wire shape of /athlete/activities entries.
type apiActivity struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	StartDateLocal string  `json:"start_date_local"`
	Distance       float64 `json:"distance"`
	MovingTime     int64   `json:"moving_time"`
	ElapsedTime    int64   `json:"elapsed_time"`
	SportType      string  `json:"sport_type"`
	AverageSpeed   float64 `json:"average_speed"`
}

// FetchActivities pages through the athlete's activities between after and
// before (either may be zero) and returns them normalized.
func (c *Client) FetchActivities(ctx context.Context, after, before time.Time) ([]Activity, error) {
	var all []Activity

	for page := 1; ; page++ {
		batch, err := c.fetchPage(ctx, after, before, page)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}

		for _, a := range batch {
			all = append(all, Activity{
				ID:           a.ID,
				Name:         a.Name,
				StartDate:    a.StartDateLocal,
				Distance:     a.Distance,
				MovingTime:   a.MovingTime,
				ElapsedTime:  a.ElapsedTime,
				Type:         a.SportType,
				AverageSpeed: a.AverageSpeed,
			})
		}
		c.log.Debug("fetched activity page",
			zap.Int("page", page), zap.Int("count", len(batch)))

		if len(batch) < pageSize {
			break
		}
	}

	c.log.Info("fetched strava activities", zap.Int("total", len(all)))
	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, after, before time.Time, page int) ([]apiActivity, error) {
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("per_page", strconv.Itoa(pageSize))
	if !after.IsZero() {
		values.Set("after", strconv.FormatInt(after.Unix(), 10))
	}
	if !before.IsZero() {
		values.Set("before", strconv.FormatInt(before.Unix(), 10))
	}

	u := fmt.Sprintf("%s/athlete/activities?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("strava activities page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("strava activities page %d: unexpected status %d", page, resp.StatusCode)
	}

	var batch []apiActivity
	if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
		return nil, fmt.Errorf("strava activities page %d: decode: %w", page, err)
	}
	return batch, nil
}
