package charts

import (
	"fmt"
	"os"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

// renderWeatherBars draws current conditions as a bar chart. Fields holding
// the unavailable sentinel are skipped.
func (g *Generator) renderWeatherBars(filename string, report *models.WeatherReport) error {
	var bars []chart.Value

	if report.TemperatureC != nil {
		bars = append(bars, chart.Value{
			Value: *report.TemperatureC,
			Label: fmt.Sprintf("Temp %s C", report.Temperature),
			Style: chart.Style{FillColor: drawing.Color{R: 229, G: 115, B: 51, A: 255}},
		})
	}
	if v, err := strconv.ParseFloat(report.Humidity, 64); err == nil {
		bars = append(bars, chart.Value{
			Value: v,
			Label: fmt.Sprintf("Humidity %s%%", report.Humidity),
			Style: chart.Style{FillColor: drawing.Color{R: 74, G: 144, B: 217, A: 255}},
		})
	}
	if v, err := strconv.ParseFloat(report.WindSpeed, 64); err == nil {
		bars = append(bars, chart.Value{
			Value: v,
			Label: fmt.Sprintf("Wind %s km/h", report.WindSpeed),
			Style: chart.Style{FillColor: drawing.Color{R: 126, G: 192, B: 92, A: 255}},
		})
	}
	if report.RainMM != nil {
		bars = append(bars, chart.Value{
			Value: *report.RainMM,
			Label: fmt.Sprintf("Rain %s mm", report.Rain),
			Style: chart.Style{FillColor: drawing.Color{R: 92, G: 107, B: 192, A: 255}},
		})
	}

	if len(bars) == 0 {
		return fmt.Errorf("no numeric weather fields to chart")
	}

	graph := chart.BarChart{
		Title: "Current Weather Conditions",
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 30, Right: 30, Bottom: 40},
		},
		Width:    700,
		Height:   320,
		BarWidth: 70,
		XAxis:    chart.Style{FontSize: 10},
		Bars:     bars,
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render weather chart: %w", err)
	}
	return nil
}
