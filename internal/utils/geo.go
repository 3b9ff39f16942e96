package utils

import (
	"math"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

// Earth's radius in kilometers
const earthRadiusKm = 6371.0

// DistanceKm calculates the great-circle distance between two coordinates
// in kilometers using the Haversine formula. It is pure and deterministic;
// the only error condition is a non-finite or out-of-range input.
func DistanceKm(a, b models.Coordinate) (float64, error) {
	if !a.IsValid() || !b.IsValid() {
		return 0, apperr.ErrInvalidCoordinate
	}

	lat1 := degreesToRadians(a.Latitude)
	lon1 := degreesToRadians(a.Longitude)
	lat2 := degreesToRadians(b.Latitude)
	lon2 := degreesToRadians(b.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c, nil
}

// IsWithinCircle reports whether point lies within radiusM meters of center
func IsWithinCircle(point, center models.Coordinate, radiusM float64) (bool, error) {
	distKm, err := DistanceKm(point, center)
	if err != nil {
		return false, err
	}
	return distKm*1000 <= radiusM, nil
}

// IsWithinPolygon reports whether point lies inside the polygon formed by
// vertices, using the ray-casting algorithm. Vertices must form a simple
// polygon in order; that is the caller's responsibility. Fewer than three
// vertices is a degenerate boundary.
func IsWithinPolygon(point models.Coordinate, vertices []models.Coordinate) (bool, error) {
	if len(vertices) < 3 {
		return false, apperr.ErrInvalidZone
	}
	if !point.IsValid() {
		return false, apperr.ErrInvalidCoordinate
	}

	inside := false
	j := len(vertices) - 1
	for i := 0; i < len(vertices); i++ {
		vi, vj := vertices[i], vertices[j]
		if (vi.Latitude > point.Latitude) != (vj.Latitude > point.Latitude) {
			// Longitude where the edge crosses the point's latitude
			crossLng := (vj.Longitude-vi.Longitude)*(point.Latitude-vi.Latitude)/
				(vj.Latitude-vi.Latitude) + vi.Longitude
			if point.Longitude < crossLng {
				inside = !inside
			}
		}
		j = i
	}

	return inside, nil
}

// ZoneContains reports whether a zone's boundary contains the point
func ZoneContains(zone *models.DeliveryZone, point models.Coordinate) (bool, error) {
	switch zone.Boundary.Kind {
	case models.BoundaryCircle:
		return IsWithinCircle(point, zone.Boundary.Center, zone.Boundary.RadiusM)
	case models.BoundaryPolygon:
		return IsWithinPolygon(point, zone.Boundary.Vertices)
	default:
		return false, apperr.ErrInvalidZone
	}
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
