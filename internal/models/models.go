package models

import (
	"fmt"
	"time"
)

// Language is the user's preferred response language.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageUrdu    Language = "urdu"
)

// AnalysisType selects which satellite indices are computed for a request.
type AnalysisType string

const (
	AnalysisFull         AnalysisType = "full"
	AnalysisNDVIOnly     AnalysisType = "ndvi_only"
	AnalysisSoilMoisture AnalysisType = "soil_moisture"
	AnalysisTempOnly     AnalysisType = "temp_only"
	AnalysisCropHealth   AnalysisType = "crop_health"
	AnalysisPestRisk     AnalysisType = "pest_risk"
)

// NeedsVegetationIndex reports whether this analysis type requires an NDVI composite.
func (t AnalysisType) NeedsVegetationIndex() bool {
	return t == AnalysisFull || t == AnalysisNDVIOnly || t == AnalysisCropHealth
}

// NeedsMoistureIndex reports whether this analysis type requires an NDMI composite.
func (t AnalysisType) NeedsMoistureIndex() bool {
	return t == AnalysisFull || t == AnalysisSoilMoisture
}

// Coordinates is a decimal latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lon)
}

// DateRange is an inclusive pair of ISO-8601 calendar dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s to %s", r.Start, r.End)
}

// ParsedIntent is the fully-defaulted result of parsing a user message.
// Every field is always populated; absence of a detected signal maps to the
// zero default, never to a nil that downstream code has to guard against
// (Coordinates and DateRange are optional by contract and checked explicitly).
type ParsedIntent struct {
	Coordinates       []Coordinates `json:"coordinates"`
	DateRange         *DateRange    `json:"date_range,omitempty"`
	AnalysisType      AnalysisType  `json:"analysis_type"`
	Language          Language      `json:"language"`
	OtherInstructions []string      `json:"other_instructions"`
	SpecialRequests   []string      `json:"special_requests"`
}

// WeatherSnapshot is raw current-conditions data from the weather adapter.
type WeatherSnapshot struct {
	TemperatureC float64 `json:"temperature"`
	Humidity     int     `json:"humidity"`
	WindKph      float64 `json:"wind_speed"`
	Conditions   string  `json:"conditions"`
	RainMM       float64 `json:"rain"`
	LocalTime    string  `json:"timestamp"`
}

// WeatherReport is a display-safe rendering of a WeatherSnapshot. Fields the
// adapter could not supply hold the "N/A" sentinel so every downstream
// formatter can print them without further checks. The numeric pointers carry
// the underlying values when they are known; they back the threshold rules.
type WeatherReport struct {
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"wind_speed"`
	Conditions  string `json:"conditions"`
	Rain        string `json:"rain"`
	Timestamp   string `json:"timestamp,omitempty"`

	TemperatureC *float64 `json:"-"`
	RainMM       *float64 `json:"-"`
}

// HealthLabel is the qualitative crop health class derived from NDVI.
type HealthLabel string

const (
	HealthExcellent HealthLabel = "Excellent"
	HealthGood      HealthLabel = "Good"
	HealthModerate  HealthLabel = "Moderate"
	HealthPoor      HealthLabel = "Poor"
	HealthUnknown   HealthLabel = "Unknown"
)

// PointResult holds the analysis outcome for a single requested coordinate.
// A non-empty Err marks the whole record as failed; failed records are listed
// in the report's issue summary and excluded from quantitative sections.
// Records are built once by the aggregator and never mutated afterwards.
type PointResult struct {
	Coordinates    Coordinates    `json:"coordinates"`
	AnalysisPeriod DateRange      `json:"analysis_period"`
	Weather        *WeatherReport `json:"weather,omitempty"`
	NDVI           *float64       `json:"ndvi,omitempty"`
	CropHealth     HealthLabel    `json:"crop_health,omitempty"`
	SoilMoisture   *float64       `json:"soil_moisture,omitempty"`
	Err            string         `json:"error,omitempty"`
}

// Failed reports whether this point's analysis failed.
func (p *PointResult) Failed() bool {
	return p == nil || p.Err != ""
}

// AnalysisBatch maps generated point keys (point_0, point_1, ...) to results.
// Keys preserves the order of the input coordinate list.
type AnalysisBatch struct {
	Keys        []string                `json:"keys"`
	Points      map[string]*PointResult `json:"points"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// HasValidPoint reports whether at least one point succeeded.
func (b *AnalysisBatch) HasValidPoint() bool {
	if b == nil {
		return false
	}
	for _, key := range b.Keys {
		if p := b.Points[key]; p != nil && !p.Failed() {
			return true
		}
	}
	return false
}

// First returns the first point result in input order, or nil.
func (b *AnalysisBatch) First() *PointResult {
	if b == nil || len(b.Keys) == 0 {
		return nil
	}
	return b.Points[b.Keys[0]]
}
