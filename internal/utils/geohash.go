package utils

import (
	"github.com/mmcloughlin/geohash"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

// SamplePrecision buckets driver position samples into roughly 38m x 19m
// cells, enough to suppress duplicate samples from a stationary driver.
const SamplePrecision uint = 8

// EncodeLocation converts a coordinate to a geohash string
func EncodeLocation(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash converts a geohash string back to a coordinate
func DecodeGeohash(hash string) models.Coordinate {
	lat, lng := geohash.Decode(hash)
	return models.Coordinate{Latitude: lat, Longitude: lng}
}

// GeohashNeighbors returns the neighboring geohashes of a given geohash
func GeohashNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}
