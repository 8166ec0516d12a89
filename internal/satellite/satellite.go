// Package satellite provides access to temporally-composited Sentinel-2
// imagery over small analysis footprints. The aggregator depends only on the
// interfaces here; the Sentinel Hub client in this package is the production
// implementation.
package satellite

import "context"

// Sentinel-2 bands used by the analysis indices.
const (
	BandRed  = "B04"
	BandNIR  = "B08"
	BandSWIR = "B11"
)

// Query describes a composite request: a circular buffer around a point,
// a date window, and a cloud-cover ceiling for the source scenes.
type Query struct {
	Lat         float64
	Lon         float64
	RadiusM     int
	Start       string // ISO date, inclusive
	End         string // ISO date, inclusive
	MaxCloudPct float64
}

// RasterIndex is a normalized-difference index derived from a composite.
type RasterIndex interface {
	// MeanOver computes the mean index value over the query footprint at the
	// given sampling resolution in metres. A nil value with nil error means
	// no usable pixels were found in the window.
	MeanOver(ctx context.Context, scaleM int) (*float64, error)
}

// Composite is a temporal composite of source scenes over a query window.
type Composite interface {
	NormalizedDifference(bandA, bandB string) RasterIndex
}

// Client builds composites. Implementations map every provider failure to a
// returned error; callers treat those as per-point recoverable failures.
type Client interface {
	Query(ctx context.Context, q Query) (Composite, error)
}
