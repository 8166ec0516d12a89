// Package charts renders the static PNG figures embedded in farm reports.
package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/sahilvr03/GIS-AGENT/internal/models"
)

// Generator handles creation of static chart images.
type Generator struct {
	outputDir string
}

// NewGenerator creates a chart generator writing into outputDir.
func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

// PointCharts holds the rendered image paths for one analysis point. A path
// is empty when the underlying data was unavailable.
type PointCharts struct {
	NDVIScale     string
	MoistureMeter string
	WeatherBars   string
}

// GeneratePointCharts renders every figure the point's data supports. The key
// plus a random suffix keeps concurrent report generations from overwriting
// each other's images.
func (g *Generator) GeneratePointCharts(key string, p *models.PointResult) (*PointCharts, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create chart directory: %w", err)
	}

	suffix := uuid.NewString()[:8]
	out := &PointCharts{}

	if p.NDVI != nil {
		path := filepath.Join(g.outputDir, fmt.Sprintf("%s_ndvi_%s.png", key, suffix))
		if err := g.renderNDVIScale(path, *p.NDVI, p.CropHealth); err != nil {
			return nil, err
		}
		out.NDVIScale = path
	}

	if p.SoilMoisture != nil {
		path := filepath.Join(g.outputDir, fmt.Sprintf("%s_moisture_%s.png", key, suffix))
		if err := g.renderMoistureMeter(path, *p.SoilMoisture); err != nil {
			return nil, err
		}
		out.MoistureMeter = path
	}

	if p.Weather != nil && p.Weather.TemperatureC != nil {
		path := filepath.Join(g.outputDir, fmt.Sprintf("%s_weather_%s.png", key, suffix))
		if err := g.renderWeatherBars(path, p.Weather); err != nil {
			return nil, err
		}
		out.WeatherBars = path
	}

	return out, nil
}
