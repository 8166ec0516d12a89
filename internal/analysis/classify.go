package analysis

import (
	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

// AssessCropHealth maps a mean NDVI value to a qualitative health label.
// Thresholds are strict: the boundary values 0.7, 0.5 and 0.3 fall into the
// lower bracket. A nil (unavailable) index yields Unknown.
func AssessCropHealth(ndvi *float64) models.HealthLabel {
	if ndvi == nil {
		return models.HealthUnknown
	}
	switch v := *ndvi; {
	case v > 0.7:
		return models.HealthExcellent
	case v > 0.5:
		return models.HealthGood
	case v > 0.3:
		return models.HealthModerate
	default:
		return models.HealthPoor
	}
}

// MoisturePercent converts an NDMI-like index to a percentage clamped to
// [0, 100].
func MoisturePercent(index float64) float64 {
	percent := index * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// MoistureRecommendation maps a moisture percentage to an irrigation
// recommendation.
func MoistureRecommendation(percent float64) string {
	switch {
	case percent < 30:
		return "Soil is too dry. Immediate irrigation needed."
	case percent < 50:
		return "Soil is somewhat dry. Consider irrigation soon."
	case percent < 70:
		return "Soil moisture is at optimal levels."
	default:
		return "Soil is too wet. Reduce irrigation to prevent waterlogging."
	}
}

// TemperatureImpact maps a current temperature to a crop stress assessment.
func TemperatureImpact(tempC float64) string {
	switch {
	case tempC > 35:
		return "High temperatures may stress crops. Provide shade and ensure adequate water."
	case tempC < 10:
		return "Low temperatures may damage crops. Consider protective measures."
	default:
		return "Temperatures are in optimal range for most crops."
	}
}

// HealthInterpretation is the narrative interpretation printed next to the
// NDVI chart.
func HealthInterpretation(health models.HealthLabel) string {
	switch health {
	case models.HealthExcellent:
		return "Crops are very healthy with excellent growth"
	case models.HealthGood:
		return "Crops are healthy but could improve"
	case models.HealthModerate:
		return "Crops show some issues needing attention"
	case models.HealthPoor:
		return "Crops are in poor condition, need immediate action"
	default:
		return "NDVI analysis not available"
	}
}

// Recommendations assembles the farm-management recommendation list for one
// point. Rule blocks are additive: a point can trigger health, moisture and
// weather rules at the same time.
func Recommendations(p *models.PointResult) []string {
	if p == nil {
		return nil
	}

	var recs []string

	switch p.CropHealth {
	case models.HealthPoor:
		recs = append(recs,
			"Apply fertilizer urgently",
			"Check for pests and diseases",
			"Test soil for nutrient deficiencies",
			"Increase irrigation if needed",
		)
	case models.HealthModerate:
		recs = append(recs,
			"Apply balanced fertilizer",
			"Monitor for early signs of pests",
			"Maintain proper irrigation",
			"Consider foliar feeding",
		)
	case models.HealthGood:
		recs = append(recs,
			"Continue current practices",
			"Monitor crop health regularly",
			"Prepare for next growth stage",
		)
	case models.HealthExcellent:
		recs = append(recs,
			"Maintain excellent practices",
			"Document management strategies",
			"Explore intercropping options",
		)
	}

	if p.SoilMoisture != nil {
		if *p.SoilMoisture < 0.3 {
			recs = append(recs, "Increase irrigation frequency immediately")
		} else if *p.SoilMoisture > 0.7 {
			recs = append(recs, "Reduce irrigation to prevent waterlogging")
		}
	}

	if p.Weather != nil {
		if p.Weather.TemperatureC != nil {
			if *p.Weather.TemperatureC > 35 {
				recs = append(recs, "Use mulch or shade to reduce soil temperature")
			}
			if *p.Weather.TemperatureC < 10 {
				recs = append(recs, "Use protective covers for cold protection")
			}
		}
		if p.Weather.RainMM != nil && *p.Weather.RainMM > 10 {
			recs = append(recs, "Ensure proper drainage to prevent waterlogging")
		}
	}

	return recs
}
