// Package mocks provides deterministic adapter implementations for mockup
// mode and tests. They satisfy the satellite and weather interfaces without
// touching the network.
package mocks

import (
	"context"

	"github.com/sahilvr03/GIS-AGENT/internal/models"
	"github.com/sahilvr03/GIS-AGENT/internal/satellite"
)

// SatelliteClient is a canned satellite.Client. NDVI is served for
// NIR/Red requests, NDMI for NIR/SWIR ones; either may be nil to simulate an
// empty composite window.
type SatelliteClient struct {
	NDVI     *float64
	NDMI     *float64
	QueryErr error
	IndexErr error

	// Queries records every composite request for assertions.
	Queries []satellite.Query
}

// NewSatelliteClient returns a mock serving healthy mid-range index values.
func NewSatelliteClient() *SatelliteClient {
	ndvi := 0.62
	ndmi := 0.41
	return &SatelliteClient{NDVI: &ndvi, NDMI: &ndmi}
}

func (m *SatelliteClient) Query(ctx context.Context, q satellite.Query) (satellite.Composite, error) {
	m.Queries = append(m.Queries, q)
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return &mockComposite{client: m}, nil
}

type mockComposite struct {
	client *SatelliteClient
}

func (c *mockComposite) NormalizedDifference(bandA, bandB string) satellite.RasterIndex {
	return &mockIndex{client: c.client, bandA: bandA, bandB: bandB}
}

type mockIndex struct {
	client       *SatelliteClient
	bandA, bandB string
}

func (i *mockIndex) MeanOver(ctx context.Context, scaleM int) (*float64, error) {
	if i.client.IndexErr != nil {
		return nil, i.client.IndexErr
	}
	if i.bandA == satellite.BandNIR && i.bandB == satellite.BandSWIR {
		return i.client.NDMI, nil
	}
	return i.client.NDVI, nil
}

// WeatherProvider is a canned weather.Provider.
type WeatherProvider struct {
	Snapshot *models.WeatherSnapshot
	Err      error
}

// NewWeatherProvider returns a mock serving a mild Lahore afternoon.
func NewWeatherProvider() *WeatherProvider {
	return &WeatherProvider{
		Snapshot: &models.WeatherSnapshot{
			TemperatureC: 31.0,
			Humidity:     48,
			WindKph:      9.4,
			Conditions:   "Partly cloudy",
			RainMM:       0,
			LocalTime:    "2025-06-15 14:30",
		},
	}
}

func (m *WeatherProvider) Current(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Snapshot, nil
}
