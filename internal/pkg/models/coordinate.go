package models

import (
	"math"
	"time"
)

// Coordinate represents a WGS84 position in decimal degrees.
// It is a value type: always pass and store by value, never share a pointer.
type Coordinate struct {
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	AccuracyM  float64   `json:"accuracy_m,omitempty" db:"accuracy_m"`
	CapturedAt time.Time `json:"captured_at" db:"captured_at"`
}

// IsValid reports whether the coordinate is a finite position inside
// the valid latitude/longitude ranges.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
