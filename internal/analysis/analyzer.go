// Package analysis orchestrates per-point agricultural analysis: coordinate
// validation, weather lookup, satellite index computation and health
// classification. Points are processed independently; one point failing never
// aborts the batch.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sahilvr03/GIS-AGENT/internal/geo"
	"github.com/sahilvr03/GIS-AGENT/internal/logger"
	"github.com/sahilvr03/GIS-AGENT/internal/models"
	"github.com/sahilvr03/GIS-AGENT/internal/satellite"
	"github.com/sahilvr03/GIS-AGENT/internal/weather"
)

const (
	// Analysis footprint: a 1 km buffer around each point.
	bufferRadiusM = 1000
	// Source scenes above this cloud cover are excluded from composites.
	maxCloudPct = 20
	// Sampling resolutions for the index means.
	ndviScaleM = 10
	ndmiScaleM = 20
	// Window applied when the request carries no date range.
	defaultWindowDays = 90
)

// ErrNoCoordinates is returned when a request carries an empty coordinate
// list.
var ErrNoCoordinates = errors.New("No coordinates provided")

// Analyzer runs the per-point analysis pipeline.
type Analyzer struct {
	satellite satellite.Client
	weather   weather.Provider
	log       *logger.Logger
	now       func() time.Time
}

// New creates an analyzer over the given adapters.
func New(sat satellite.Client, w weather.Provider) *Analyzer {
	return &Analyzer{
		satellite: sat,
		weather:   w,
		log:       logger.GetGlobalLogger().WithComponent("analysis"),
		now:       time.Now,
	}
}

// DefaultDateRange resolves the fallback analysis window: the 90 days ending
// today, both bounds inclusive.
func DefaultDateRange(now time.Time) models.DateRange {
	return models.DateRange{
		Start: now.AddDate(0, 0, -defaultWindowDays).Format("2006-01-02"),
		End:   now.Format("2006-01-02"),
	}
}

// Analyze runs the pipeline for every coordinate and returns one result per
// point, keyed point_0, point_1, ... in input order. The only top-level
// failure is an empty coordinate list; every per-point failure is captured in
// that point's record. otherInstructions is accepted per request and is never
// shared between calls.
func (a *Analyzer) Analyze(ctx context.Context, coords []models.Coordinates, dateRange *models.DateRange, analysisType models.AnalysisType, otherInstructions []string) (*models.AnalysisBatch, error) {
	if len(coords) == 0 {
		return nil, ErrNoCoordinates
	}

	resolved := models.DateRange{}
	if dateRange != nil {
		resolved = *dateRange
	} else {
		resolved = DefaultDateRange(a.now())
	}

	batch := &models.AnalysisBatch{
		Points:      make(map[string]*models.PointResult, len(coords)),
		GeneratedAt: a.now(),
	}

	for i, c := range coords {
		key := fmt.Sprintf("point_%d", i)
		batch.Keys = append(batch.Keys, key)
		batch.Points[key] = a.analyzePoint(ctx, c, resolved, analysisType)
	}

	return batch, nil
}

// CurrentWeather answers a standalone weather query for one location.
// Unlike the per-point pipeline, a provider failure is returned to the caller
// here since there is no analysis to degrade into.
func (a *Analyzer) CurrentWeather(ctx context.Context, lat, lon float64) (*models.WeatherReport, error) {
	snap, err := a.weather.Current(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	return weather.Format(snap, nil), nil
}

// analyzePoint runs one point through the pipeline. Every failure is folded
// into the returned record.
func (a *Analyzer) analyzePoint(ctx context.Context, c models.Coordinates, dateRange models.DateRange, analysisType models.AnalysisType) *models.PointResult {
	if !geo.ValidateCoordinates(c.Lat, c.Lon) {
		a.log.Warnf("coordinates outside Pakistan: %s", c)
		return &models.PointResult{
			Coordinates: c,
			Err:         "Coordinates outside Pakistan",
		}
	}

	result := &models.PointResult{
		Coordinates:    c,
		AnalysisPeriod: dateRange,
	}

	// Weather failures degrade to sentinel fields; they never abort the
	// point's satellite analysis.
	snap, err := a.weather.Current(ctx, c.Lat, c.Lon)
	if err != nil {
		a.log.Warnf("weather lookup failed for %s: %v", c, err)
	}
	result.Weather = weather.Format(snap, err)

	composite, err := a.satellite.Query(ctx, satellite.Query{
		Lat:         c.Lat,
		Lon:         c.Lon,
		RadiusM:     bufferRadiusM,
		Start:       dateRange.Start,
		End:         dateRange.End,
		MaxCloudPct: maxCloudPct,
	})
	if err != nil {
		result.Err = err.Error()
		return result
	}

	if analysisType.NeedsVegetationIndex() {
		ndvi := composite.NormalizedDifference(satellite.BandNIR, satellite.BandRed)
		mean, err := ndvi.MeanOver(ctx, ndviScaleM)
		if err != nil {
			result.Err = err.Error()
			return result
		}
		result.NDVI = mean
		result.CropHealth = AssessCropHealth(mean)
	}

	if analysisType.NeedsMoistureIndex() {
		ndmi := composite.NormalizedDifference(satellite.BandNIR, satellite.BandSWIR)
		mean, err := ndmi.MeanOver(ctx, ndmiScaleM)
		if err != nil {
			result.Err = err.Error()
			return result
		}
		result.SoilMoisture = mean
	}

	return result
}
