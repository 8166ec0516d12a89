package geo

// Bounding box of the served region (Pakistan).
const (
	MinLat = 23.5
	MaxLat = 37.0
	MinLon = 60.0
	MaxLon = 77.0
)

// ValidateCoordinates reports whether a latitude/longitude pair falls inside
// the Pakistan bounding box, boundary-inclusive on all four edges.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= MinLat && lat <= MaxLat && lon >= MinLon && lon <= MaxLon
}
