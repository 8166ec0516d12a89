package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

func TestCurrentMissingAPIKey(t *testing.T) {
	client := NewClient("")

	_, err := client.Current(context.Background(), 31.5, 74.3)
	if err == nil {
		t.Fatal("expected an error for missing API key")
	}
	if !strings.Contains(err.Error(), "not configured") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCurrentParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing key query parameter")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"location": {"name": "Lahore", "localtime": "2025-06-15 14:30"},
			"current": {
				"temp_c": 38.5,
				"humidity": 42,
				"wind_kph": 12.2,
				"precip_mm": 0.0,
				"condition": {"text": "Sunny"}
			}
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key")
	client.SetBaseURL(server.URL)

	snap, err := client.Current(context.Background(), 31.5204, 74.3587)
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}

	if snap.TemperatureC != 38.5 {
		t.Errorf("temperature = %v, want 38.5", snap.TemperatureC)
	}
	if snap.Humidity != 42 {
		t.Errorf("humidity = %v, want 42", snap.Humidity)
	}
	if snap.Conditions != "Sunny" {
		t.Errorf("conditions = %q, want Sunny", snap.Conditions)
	}
	if snap.LocalTime != "2025-06-15 14:30" {
		t.Errorf("local time = %q", snap.LocalTime)
	}
}

func TestCurrentAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"message": "API key has been disabled"}}`))
	}))
	defer server.Close()

	client := NewClient("bad-key")
	client.SetBaseURL(server.URL)

	_, err := client.Current(context.Background(), 31.5, 74.3)
	if err == nil {
		t.Fatal("expected an error for 403 response")
	}
	if !strings.Contains(err.Error(), "API key has been disabled") {
		t.Errorf("error should carry the API message, got: %v", err)
	}
}

func TestFormatSuccess(t *testing.T) {
	snap := &models.WeatherSnapshot{
		TemperatureC: 36.4,
		Humidity:     55,
		WindKph:      8.0,
		Conditions:   "Partly cloudy",
		RainMM:       1.2,
		LocalTime:    "2025-06-15 10:00",
	}

	report := Format(snap, nil)

	if report.Temperature != "36.4" {
		t.Errorf("temperature = %q", report.Temperature)
	}
	if report.Humidity != "55" {
		t.Errorf("humidity = %q", report.Humidity)
	}
	if report.Conditions != "Partly cloudy" {
		t.Errorf("conditions = %q", report.Conditions)
	}
	if report.TemperatureC == nil || *report.TemperatureC != 36.4 {
		t.Errorf("numeric temperature missing")
	}
	if report.RainMM == nil || *report.RainMM != 1.2 {
		t.Errorf("numeric rain missing")
	}
}

func TestFormatDegraded(t *testing.T) {
	report := Format(nil, errors.New("weather API key not configured"))

	if report.Temperature != Unavailable || report.Humidity != Unavailable {
		t.Errorf("expected sentinel fields, got %+v", report)
	}
	if !strings.HasPrefix(report.Conditions, "Error:") {
		t.Errorf("conditions should carry the failure, got %q", report.Conditions)
	}
	if report.TemperatureC != nil {
		t.Error("numeric temperature must be absent on failure")
	}

	// A nil snapshot with no error still renders safely.
	empty := Format(nil, nil)
	if empty.Conditions != "Unknown" || empty.Rain != "0" {
		t.Errorf("unexpected empty snapshot formatting: %+v", empty)
	}
}
