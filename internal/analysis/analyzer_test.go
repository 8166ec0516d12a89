package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sahilvr03/GIS-AGENT/internal/mocks"
	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

func newTestAnalyzer(sat *mocks.SatelliteClient, w *mocks.WeatherProvider) *Analyzer {
	a := New(sat, w)
	a.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return a
}

func TestAnalyzeEmptyCoordinates(t *testing.T) {
	a := newTestAnalyzer(mocks.NewSatelliteClient(), mocks.NewWeatherProvider())

	batch, err := a.Analyze(context.Background(), nil, nil, models.AnalysisFull, nil)
	if !errors.Is(err, ErrNoCoordinates) {
		t.Fatalf("err = %v, want ErrNoCoordinates", err)
	}
	if batch != nil {
		t.Errorf("batch should be nil on error, got %+v", batch)
	}
}

func TestAnalyzePointIsolation(t *testing.T) {
	sat := mocks.NewSatelliteClient()
	a := newTestAnalyzer(sat, mocks.NewWeatherProvider())

	coords := []models.Coordinates{
		{Lat: 48.85, Lon: 2.35},  // outside Pakistan
		{Lat: 31.52, Lon: 74.35}, // Lahore
	}
	batch, err := a.Analyze(context.Background(), coords, nil, models.AnalysisFull, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(batch.Keys) != 2 || batch.Keys[0] != "point_0" || batch.Keys[1] != "point_1" {
		t.Fatalf("keys = %v, want [point_0 point_1]", batch.Keys)
	}

	p0 := batch.Points["point_0"]
	if !p0.Failed() || p0.Err != "Coordinates outside Pakistan" {
		t.Errorf("point_0 err = %q, want rejection", p0.Err)
	}
	if p0.Coordinates.Lat != 48.85 {
		t.Errorf("failed record should keep its coordinates, got %v", p0.Coordinates)
	}

	p1 := batch.Points["point_1"]
	if p1.Failed() {
		t.Fatalf("point_1 unexpectedly failed: %q", p1.Err)
	}
	if p1.NDVI == nil || *p1.NDVI != 0.62 {
		t.Errorf("point_1 NDVI = %v, want 0.62", p1.NDVI)
	}
	if p1.CropHealth != models.HealthGood {
		t.Errorf("point_1 health = %q, want Good", p1.CropHealth)
	}
	if p1.SoilMoisture == nil || *p1.SoilMoisture != 0.41 {
		t.Errorf("point_1 moisture = %v, want 0.41", p1.SoilMoisture)
	}

	if !batch.HasValidPoint() {
		t.Error("batch with one valid point should report HasValidPoint")
	}

	// The rejected point must never reach the satellite adapter.
	if len(sat.Queries) != 1 {
		t.Fatalf("satellite queried %d times, want 1", len(sat.Queries))
	}
	if sat.Queries[0].Lat != 31.52 {
		t.Errorf("satellite query lat = %v, want 31.52", sat.Queries[0].Lat)
	}
}

func TestAnalyzeDefaultDateRange(t *testing.T) {
	sat := mocks.NewSatelliteClient()
	a := newTestAnalyzer(sat, mocks.NewWeatherProvider())

	coords := []models.Coordinates{{Lat: 31.52, Lon: 74.35}}
	batch, err := a.Analyze(context.Background(), coords, nil, models.AnalysisFull, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	p := batch.First()
	if p.AnalysisPeriod.Start != "2025-03-17" || p.AnalysisPeriod.End != "2025-06-15" {
		t.Errorf("default period = %v, want 90 days ending today", p.AnalysisPeriod)
	}
	if sat.Queries[0].Start != "2025-03-17" || sat.Queries[0].End != "2025-06-15" {
		t.Errorf("query window = %s..%s", sat.Queries[0].Start, sat.Queries[0].End)
	}
}

func TestAnalyzeExplicitDateRange(t *testing.T) {
	sat := mocks.NewSatelliteClient()
	a := newTestAnalyzer(sat, mocks.NewWeatherProvider())

	dr := &models.DateRange{Start: "2025-01-01", End: "2025-02-01"}
	coords := []models.Coordinates{{Lat: 31.52, Lon: 74.35}}
	batch, err := a.Analyze(context.Background(), coords, dr, models.AnalysisFull, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got := batch.First().AnalysisPeriod; got != *dr {
		t.Errorf("period = %v, want %v", got, *dr)
	}
}

func TestAnalyzeTypeGating(t *testing.T) {
	tests := []struct {
		name         string
		analysisType models.AnalysisType
		wantNDVI     bool
		wantMoisture bool
	}{
		{"full", models.AnalysisFull, true, true},
		{"ndvi only", models.AnalysisNDVIOnly, true, false},
		{"soil moisture", models.AnalysisSoilMoisture, false, true},
		{"temp only", models.AnalysisTempOnly, false, false},
		{"crop health", models.AnalysisCropHealth, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAnalyzer(mocks.NewSatelliteClient(), mocks.NewWeatherProvider())
			coords := []models.Coordinates{{Lat: 31.52, Lon: 74.35}}
			batch, err := a.Analyze(context.Background(), coords, nil, tt.analysisType, nil)
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			p := batch.First()
			if (p.NDVI != nil) != tt.wantNDVI {
				t.Errorf("NDVI present = %v, want %v", p.NDVI != nil, tt.wantNDVI)
			}
			if (p.SoilMoisture != nil) != tt.wantMoisture {
				t.Errorf("moisture present = %v, want %v", p.SoilMoisture != nil, tt.wantMoisture)
			}
		})
	}
}

func TestAnalyzeWeatherDegradation(t *testing.T) {
	w := mocks.NewWeatherProvider()
	w.Err = errors.New("connection refused")
	a := newTestAnalyzer(mocks.NewSatelliteClient(), w)

	coords := []models.Coordinates{{Lat: 31.52, Lon: 74.35}}
	batch, err := a.Analyze(context.Background(), coords, nil, models.AnalysisFull, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	p := batch.First()
	if p.Failed() {
		t.Fatalf("weather failure must not fail the point: %q", p.Err)
	}
	if p.Weather == nil || p.Weather.Temperature != "N/A" {
		t.Errorf("weather = %+v, want degraded sentinel snapshot", p.Weather)
	}
	if p.NDVI == nil {
		t.Error("satellite analysis should still run after weather failure")
	}
}

func TestAnalyzeSatelliteFailure(t *testing.T) {
	sat := mocks.NewSatelliteClient()
	sat.QueryErr = errors.New("satellite credentials not configured")
	a := newTestAnalyzer(sat, mocks.NewWeatherProvider())

	coords := []models.Coordinates{{Lat: 31.52, Lon: 74.35}}
	batch, err := a.Analyze(context.Background(), coords, nil, models.AnalysisFull, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	p := batch.First()
	if !p.Failed() || p.Err != "satellite credentials not configured" {
		t.Errorf("err = %q, want satellite error", p.Err)
	}
	// Weather gathered before the failure stays on the record.
	if p.Weather == nil || p.Weather.Temperature == "N/A" {
		t.Errorf("weather = %+v, want pre-failure snapshot retained", p.Weather)
	}
	if batch.HasValidPoint() {
		t.Error("all-failed batch should not report a valid point")
	}
}

func TestAnalyzeNilIndexYieldsUnknownHealth(t *testing.T) {
	sat := mocks.NewSatelliteClient()
	sat.NDVI = nil
	a := newTestAnalyzer(sat, mocks.NewWeatherProvider())

	coords := []models.Coordinates{{Lat: 31.52, Lon: 74.35}}
	batch, err := a.Analyze(context.Background(), coords, nil, models.AnalysisCropHealth, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	p := batch.First()
	if p.Failed() {
		t.Fatalf("empty composite is not a failure: %q", p.Err)
	}
	if p.CropHealth != models.HealthUnknown {
		t.Errorf("health = %q, want Unknown for missing index", p.CropHealth)
	}
}
