// Package weather looks up current conditions from WeatherAPI.com and formats
// them into display-safe snapshots that degrade cleanly when the source fails.
package weather

import (
	"encoding/json"
	"fmt"
	"time"

	"context"

	"github.com/go-resty/resty/v2"

	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

const defaultBaseURL = "https://api.weatherapi.com/v1"

// Provider is the lookup interface the aggregator depends on.
type Provider interface {
	Current(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error)
}

// Client fetches current conditions from WeatherAPI.com.
type Client struct {
	http    *resty.Client
	apiKey  string
	baseURL string
}

// NewClient creates a weather client. An empty API key is tolerated: lookups
// then return a structured error instead of crashing.
func NewClient(apiKey string) *Client {
	client := resty.New()
	client.SetTimeout(15 * time.Second)
	client.SetRetryCount(2)
	client.SetRetryWaitTime(1 * time.Second)

	return &Client{
		http:    client,
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}
}

// SetBaseURL overrides the API endpoint, used by tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// currentResponse mirrors the WeatherAPI.com current.json payload.
type currentResponse struct {
	Location struct {
		Name      string `json:"name"`
		Localtime string `json:"localtime"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  int     `json:"humidity"`
		WindKph   float64 `json:"wind_kph"`
		PrecipMM  float64 `json:"precip_mm"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Current fetches current conditions for a point.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("weather API key not configured")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key": c.apiKey,
			"q":   fmt.Sprintf("%.4f,%.4f", lat, lon),
		}).
		Get(c.baseURL + "/current.json")
	if err != nil {
		return nil, fmt.Errorf("weather data fetch failed: %w", err)
	}

	var data currentResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return nil, fmt.Errorf("failed to parse weather response: %w", err)
	}

	if resp.StatusCode() != 200 {
		if data.Error != nil {
			return nil, fmt.Errorf("weather API error: %s", data.Error.Message)
		}
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode())
	}

	return &models.WeatherSnapshot{
		TemperatureC: data.Current.TempC,
		Humidity:     data.Current.Humidity,
		WindKph:      data.Current.WindKph,
		Conditions:   data.Current.Condition.Text,
		RainMM:       data.Current.PrecipMM,
		LocalTime:    data.Location.Localtime,
	}, nil
}
