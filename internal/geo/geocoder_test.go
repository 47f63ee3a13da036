package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestResolve verifies that a geocoding response maps onto a Location.
func TestResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") != "Helsinki" {
			t.Errorf("unexpected name parameter %q", r.URL.Query().Get("name"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{
			"name": "Helsinki",
			"latitude": 60.16952,
			"longitude": 24.93545,
			"country": "Finland",
			"timezone": "Europe/Helsinki"
		}]}`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.Client())
	g.baseURL = srv.URL

	loc, err := g.Resolve(context.Background(), "Helsinki")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Name != "Helsinki" || loc.Country != "Finland" {
		t.Errorf("unexpected location %+v", loc)
	}
	if loc.Latitude != 60.16952 || loc.Longitude != 24.93545 {
		t.Errorf("unexpected coordinates %+v", loc)
	}
	if loc.Timezone != "Europe/Helsinki" {
		t.Errorf("unexpected timezone %q", loc.Timezone)
	}
}

// TestResolveNotFound verifies the sentinel error for an empty result set.
func TestResolveNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	g := NewGeocoder(srv.Client())
	g.baseURL = srv.URL

	if _, err := g.Resolve(context.Background(), "Atlantis"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// TestFormatCoordinates verifies the title-block coordinate format.
func TestFormatCoordinates(t *testing.T) {
	loc := Location{Latitude: 60.16952, Longitude: 24.93545}
	got := loc.FormatCoordinates()
	if got == "" {
		t.Fatal("expected non-empty coordinate string")
	}
	for _, sub := range []string{"60.169520", "24.935450"} {
		if !strings.Contains(got, sub) {
			t.Errorf("coordinates %q missing %q", got, sub)
		}
	}
}
