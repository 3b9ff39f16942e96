package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

var (
	santiagoCentro = models.Coordinate{Latitude: -33.4489, Longitude: -70.6693}
	providencia    = models.Coordinate{Latitude: -33.4242, Longitude: -70.6118}
)

func TestDistanceKm_KnownPair(t *testing.T) {
	dist, err := DistanceKm(santiagoCentro, providencia)
	require.NoError(t, err)

	// Centro to Providencia is roughly 6 km
	assert.InDelta(t, 6.0, dist, 0.5)
}

func TestDistanceKm_Symmetry(t *testing.T) {
	ab, err := DistanceKm(santiagoCentro, providencia)
	require.NoError(t, err)
	ba, err := DistanceKm(providencia, santiagoCentro)
	require.NoError(t, err)

	assert.Equal(t, ab, ba)
}

func TestDistanceKm_ZeroDistance(t *testing.T) {
	dist, err := DistanceKm(santiagoCentro, santiagoCentro)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
}

func TestDistanceKm_InvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		a    models.Coordinate
		b    models.Coordinate
	}{
		{"nan latitude", models.Coordinate{Latitude: math.NaN()}, providencia},
		{"nan longitude", santiagoCentro, models.Coordinate{Longitude: math.NaN()}},
		{"inf latitude", models.Coordinate{Latitude: math.Inf(1)}, providencia},
		{"latitude out of range", models.Coordinate{Latitude: 91}, providencia},
		{"longitude out of range", santiagoCentro, models.Coordinate{Longitude: -181}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DistanceKm(tt.a, tt.b)
			assert.ErrorIs(t, err, apperr.ErrInvalidCoordinate)
		})
	}
}

func TestIsWithinCircle(t *testing.T) {
	center := santiagoCentro

	inside, err := IsWithinCircle(models.Coordinate{Latitude: -33.4495, Longitude: -70.6700}, center, 500)
	require.NoError(t, err)
	assert.True(t, inside)

	outside, err := IsWithinCircle(providencia, center, 500)
	require.NoError(t, err)
	assert.False(t, outside)
}

func TestIsWithinPolygon(t *testing.T) {
	// Rectangle around central Santiago
	rect := []models.Coordinate{
		{Latitude: -33.40, Longitude: -70.70},
		{Latitude: -33.40, Longitude: -70.60},
		{Latitude: -33.48, Longitude: -70.60},
		{Latitude: -33.48, Longitude: -70.70},
	}

	inside, err := IsWithinPolygon(santiagoCentro, rect)
	require.NoError(t, err)
	assert.True(t, inside)

	outside, err := IsWithinPolygon(models.Coordinate{Latitude: 0, Longitude: 0}, rect)
	require.NoError(t, err)
	assert.False(t, outside)
}

func TestIsWithinPolygon_Degenerate(t *testing.T) {
	twoVertices := []models.Coordinate{
		{Latitude: -33.40, Longitude: -70.70},
		{Latitude: -33.48, Longitude: -70.60},
	}

	_, err := IsWithinPolygon(santiagoCentro, twoVertices)
	assert.ErrorIs(t, err, apperr.ErrInvalidZone)
}

func TestZoneContains(t *testing.T) {
	circleZone := &models.DeliveryZone{
		Boundary: models.ZoneBoundary{
			Kind:    models.BoundaryCircle,
			Center:  santiagoCentro,
			RadiusM: 3000,
		},
	}

	ok, err := ZoneContains(circleZone, models.Coordinate{Latitude: -33.4450, Longitude: -70.6650})
	require.NoError(t, err)
	assert.True(t, ok)

	polygonZone := &models.DeliveryZone{
		Boundary: models.ZoneBoundary{
			Kind: models.BoundaryPolygon,
			Vertices: []models.Coordinate{
				{Latitude: -33.40, Longitude: -70.65},
				{Latitude: -33.43, Longitude: -70.58},
				{Latitude: -33.46, Longitude: -70.65},
			},
		},
	}

	ok, err = ZoneContains(polygonZone, models.Coordinate{Latitude: -33.43, Longitude: -70.63})
	require.NoError(t, err)
	assert.True(t, ok)

	unknown := &models.DeliveryZone{Boundary: models.ZoneBoundary{Kind: "squiggle"}}
	_, err = ZoneContains(unknown, santiagoCentro)
	assert.ErrorIs(t, err, apperr.ErrInvalidZone)
}

func TestEncodeDecodeGeohash(t *testing.T) {
	hash := EncodeLocation(santiagoCentro, SamplePrecision)
	assert.Len(t, hash, int(SamplePrecision))

	decoded := DecodeGeohash(hash)
	assert.InDelta(t, santiagoCentro.Latitude, decoded.Latitude, 0.001)
	assert.InDelta(t, santiagoCentro.Longitude, decoded.Longitude, 0.001)
}
