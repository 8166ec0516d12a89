package charts

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sahilvr03/GIS-AGENT/internal/analysis"
)

var moistureZones = []scaleZone{
	{0, 30, drawing.Color{R: 191, G: 123, B: 61, A: 255}},
	{30, 50, drawing.Color{R: 221, G: 187, B: 103, A: 255}},
	{50, 70, drawing.Color{R: 126, G: 192, B: 92, A: 255}},
	{70, 100, drawing.Color{R: 74, G: 144, B: 217, A: 255}},
}

// renderMoistureMeter draws the soil moisture percentage as a marker over the
// irrigation zone scale.
func (g *Generator) renderMoistureMeter(filename string, index float64) error {
	percent := analysis.MoisturePercent(index)

	series := zoneSeries(moistureZones)
	series = append(series,
		chart.ContinuousSeries{
			Style: chart.Style{
				StrokeColor: colorMarker,
				StrokeWidth: 3,
			},
			XValues: []float64{percent, percent},
			YValues: []float64{0, 1.15},
		},
		chart.AnnotationSeries{
			Annotations: []chart.Value2{
				{XValue: percent, YValue: 1.15, Label: fmt.Sprintf("%.0f%%", percent)},
			},
			Style: chart.Style{
				FontSize:    11,
				StrokeColor: colorMarker,
			},
		},
	)

	graph := chart.Chart{
		Title: "Soil Moisture Level",
		TitleStyle: chart.Style{
			FontSize:  14,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 30, Right: 60, Bottom: 30},
		},
		Width:  700,
		Height: 240,
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
			Ticks: []chart.Tick{
				{Value: 0, Label: "0"},
				{Value: 30, Label: "30 Dry"},
				{Value: 50, Label: "50"},
				{Value: 70, Label: "70 Wet"},
				{Value: 100, Label: "100"},
			},
			Style: chart.Style{FontSize: 10},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1.4},
			Style: chart.Hidden(),
		},
		Series: series,
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render moisture chart: %w", err)
	}
	return nil
}
