package charts

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

// NDVI health zone colors, poor to excellent.
var (
	colorPoor      = drawing.Color{R: 198, G: 89, B: 17, A: 255}
	colorModerate  = drawing.Color{R: 230, G: 196, B: 59, A: 255}
	colorGood      = drawing.Color{R: 146, G: 208, B: 80, A: 255}
	colorExcellent = drawing.Color{R: 56, G: 142, B: 60, A: 255}
	colorMarker    = drawing.Color{R: 33, G: 33, B: 33, A: 255}
)

type scaleZone struct {
	lo, hi float64
	color  drawing.Color
}

var ndviZones = []scaleZone{
	{0, 0.3, colorPoor},
	{0.3, 0.5, colorModerate},
	{0.5, 0.7, colorGood},
	{0.7, 1.0, colorExcellent},
}

// renderNDVIScale draws the NDVI value as a marker over a colored health
// scale, with the value and its classification annotated above the marker.
func (g *Generator) renderNDVIScale(filename string, ndvi float64, health models.HealthLabel) error {
	marker := ndvi
	if marker < 0 {
		marker = 0
	}
	if marker > 1 {
		marker = 1
	}

	series := zoneSeries(ndviZones)
	series = append(series,
		chart.ContinuousSeries{
			Style: chart.Style{
				StrokeColor: colorMarker,
				StrokeWidth: 3,
			},
			XValues: []float64{marker, marker},
			YValues: []float64{0, 1.15},
		},
		chart.AnnotationSeries{
			Annotations: []chart.Value2{
				{XValue: marker, YValue: 1.15, Label: fmt.Sprintf("%.2f (%s)", ndvi, health)},
			},
			Style: chart.Style{
				FontSize:    11,
				StrokeColor: colorMarker,
			},
		},
	)

	graph := chart.Chart{
		Title: "NDVI Value on Health Scale",
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
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
			Ticks: []chart.Tick{
				{Value: 0, Label: "0.0"},
				{Value: 0.3, Label: "0.3"},
				{Value: 0.5, Label: "0.5"},
				{Value: 0.7, Label: "0.7"},
				{Value: 1.0, Label: "1.0"},
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
		return fmt.Errorf("failed to render NDVI chart: %w", err)
	}
	return nil
}

// zoneSeries builds filled band series for a colored scale background.
func zoneSeries(zones []scaleZone) []chart.Series {
	series := make([]chart.Series, 0, len(zones))
	for _, z := range zones {
		series = append(series, chart.ContinuousSeries{
			Style: chart.Style{
				StrokeColor: z.color,
				FillColor:   z.color,
				StrokeWidth: 1,
			},
			XValues: []float64{z.lo, z.hi},
			YValues: []float64{1, 1},
		})
	}
	return series
}
