package analysis

import (
	"testing"

	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

func f(v float64) *float64 { return &v }

func TestAssessCropHealth(t *testing.T) {
	tests := []struct {
		name string
		ndvi *float64
		want models.HealthLabel
	}{
		{"excellent", f(0.75), models.HealthExcellent},
		{"good", f(0.55), models.HealthGood},
		{"moderate", f(0.35), models.HealthModerate},
		{"poor", f(0.1), models.HealthPoor},
		{"negative", f(-0.2), models.HealthPoor},
		{"nil index", nil, models.HealthUnknown},
		// Boundary values fall into the lower bracket.
		{"boundary 0.7", f(0.7), models.HealthGood},
		{"boundary 0.5", f(0.5), models.HealthModerate},
		{"boundary 0.3", f(0.3), models.HealthPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssessCropHealth(tt.ndvi); got != tt.want {
				t.Errorf("AssessCropHealth(%v) = %q, want %q", tt.ndvi, got, tt.want)
			}
		})
	}
}

func TestMoisturePercent(t *testing.T) {
	tests := []struct {
		index float64
		want  float64
	}{
		{0.45, 45},
		{-0.1, 0},
		{1.5, 100},
		{0, 0},
		{1.0, 100},
	}

	for _, tt := range tests {
		if got := MoisturePercent(tt.index); got != tt.want {
			t.Errorf("MoisturePercent(%v) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestMoistureRecommendation(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{10, "Soil is too dry. Immediate irrigation needed."},
		{30, "Soil is somewhat dry. Consider irrigation soon."},
		{50, "Soil moisture is at optimal levels."},
		{70, "Soil is too wet. Reduce irrigation to prevent waterlogging."},
		{95, "Soil is too wet. Reduce irrigation to prevent waterlogging."},
	}

	for _, tt := range tests {
		if got := MoistureRecommendation(tt.percent); got != tt.want {
			t.Errorf("MoistureRecommendation(%v) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestTemperatureImpact(t *testing.T) {
	if got := TemperatureImpact(38); got != "High temperatures may stress crops. Provide shade and ensure adequate water." {
		t.Errorf("hot impact = %q", got)
	}
	if got := TemperatureImpact(5); got != "Low temperatures may damage crops. Consider protective measures." {
		t.Errorf("cold impact = %q", got)
	}
	if got := TemperatureImpact(25); got != "Temperatures are in optimal range for most crops." {
		t.Errorf("optimal impact = %q", got)
	}
	// Boundaries are not stressed.
	if got := TemperatureImpact(35); got != "Temperatures are in optimal range for most crops." {
		t.Errorf("boundary 35 impact = %q", got)
	}
	if got := TemperatureImpact(10); got != "Temperatures are in optimal range for most crops." {
		t.Errorf("boundary 10 impact = %q", got)
	}
}

func TestRecommendationsAdditive(t *testing.T) {
	temp := 38.0
	rain := 12.0
	p := &models.PointResult{
		CropHealth:   models.HealthPoor,
		SoilMoisture: f(0.2),
		Weather: &models.WeatherReport{
			TemperatureC: &temp,
			RainMM:       &rain,
		},
	}

	recs := Recommendations(p)
	want := []string{
		"Apply fertilizer urgently",
		"Check for pests and diseases",
		"Test soil for nutrient deficiencies",
		"Increase irrigation if needed",
		"Increase irrigation frequency immediately",
		"Use mulch or shade to reduce soil temperature",
		"Ensure proper drainage to prevent waterlogging",
	}
	if len(recs) != len(want) {
		t.Fatalf("got %d recommendations, want %d: %v", len(recs), len(want), recs)
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Errorf("recommendation[%d] = %q, want %q", i, recs[i], want[i])
		}
	}
}

func TestRecommendationsUnknownHealth(t *testing.T) {
	p := &models.PointResult{CropHealth: models.HealthUnknown}
	if recs := Recommendations(p); len(recs) != 0 {
		t.Errorf("unknown health should produce no health recommendations, got %v", recs)
	}
	if recs := Recommendations(nil); recs != nil {
		t.Errorf("nil point should produce nil, got %v", recs)
	}
}

func TestRecommendationsWetSoil(t *testing.T) {
	p := &models.PointResult{
		CropHealth:   models.HealthGood,
		SoilMoisture: f(0.8),
	}
	recs := Recommendations(p)
	found := false
	for _, r := range recs {
		if r == "Reduce irrigation to prevent waterlogging" {
			found = true
		}
	}
	if !found {
		t.Errorf("wet soil recommendation missing: %v", recs)
	}
}
