package weather

import (
	"fmt"

	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

// Unavailable is the sentinel rendered for weather fields the adapter could
// not supply.
const Unavailable = "N/A"

// Format converts an adapter result into a display-safe report. A failed
// lookup yields sentinel fields with the failure folded into Conditions, so
// downstream formatting never has to handle the error itself.
func Format(snap *models.WeatherSnapshot, err error) *models.WeatherReport {
	if err != nil {
		report := degraded()
		report.Conditions = fmt.Sprintf("Error: %s", err.Error())
		return report
	}
	if snap == nil {
		return degraded()
	}

	temp := snap.TemperatureC
	rain := snap.RainMM
	conditions := snap.Conditions
	if conditions == "" {
		conditions = "Unknown"
	}

	return &models.WeatherReport{
		Temperature:  fmt.Sprintf("%.1f", snap.TemperatureC),
		Humidity:     fmt.Sprintf("%d", snap.Humidity),
		WindSpeed:    fmt.Sprintf("%.1f", snap.WindKph),
		Conditions:   conditions,
		Rain:         fmt.Sprintf("%.1f", snap.RainMM),
		Timestamp:    snap.LocalTime,
		TemperatureC: &temp,
		RainMM:       &rain,
	}
}

func degraded() *models.WeatherReport {
	return &models.WeatherReport{
		Temperature: Unavailable,
		Humidity:    Unavailable,
		WindSpeed:   Unavailable,
		Conditions:  "Unknown",
		Rain:        "0",
	}
}
