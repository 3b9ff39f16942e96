package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/services/pricing/mocks"
)

var (
	pickupCentro       = models.Coordinate{Latitude: -33.4489, Longitude: -70.6693}
	dropoffProvidencia = models.Coordinate{Latitude: -33.4242, Longitude: -70.6118}
)

func testConfig() *models.Config {
	return &models.Config{
		Pricing: models.PricingConfig{
			BaseFee:         1500,
			PerKmRate:       500,
			FreeThresholdKm: 2.0,
			PrepTimeMinutes: 15,
			BaseSpeedKmh:    30.0,
			MinEtaMinutes:   15,
		},
		Traffic: models.TrafficConfig{
			MorningRushStart: 7,
			MorningRushEnd:   9,
			EveningRushStart: 18,
			EveningRushEnd:   20,
			MiddayStart:      12,
			MiddayEnd:        14,
			RushMultiplier:   1.5,
			MiddayMultiplier: 1.2,
		},
	}
}

func testZone() *models.DeliveryZone {
	return &models.DeliveryZone{
		ID:       uuid.New(),
		Name:     "centro",
		BaseFee:  800,
		Priority: 1,
		IsActive: true,
		Boundary: models.ZoneBoundary{
			Kind:    models.BoundaryCircle,
			Center:  pickupCentro,
			RadiusM: 15000,
		},
	}
}

// offPeak is a quiet mid-afternoon hour
var offPeak = time.Date(2025, 6, 15, 15, 30, 0, 0, time.Local)

func TestQuote_ComposesFees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockZones := mocks.NewMockZoneResolver(ctrl)
	uc := NewEstimatorUC(testConfig(), mockZones)

	zone := testZone()
	mockZones.EXPECT().
		ResolveZone(gomock.Any(), dropoffProvidencia).
		Return(zone, nil)

	quote, err := uc.Quote(context.Background(), pickupCentro, dropoffProvidencia, offPeak)
	require.NoError(t, err)

	// Centro -> Providencia is about 6.1 km
	assert.InDelta(t, 6.1, quote.DistanceKm, 0.3)
	assert.Equal(t, int64(1500), quote.BaseFee)
	assert.Equal(t, int64(800), quote.ZoneFee)
	// 4.1 billable km at 500/km, rounded up
	assert.Equal(t, quote.BaseFee+quote.DistanceFee+quote.ZoneFee, quote.TotalFee)
	assert.Greater(t, quote.DistanceFee, int64(0))
	assert.Equal(t, zone.ID, quote.ZoneID)
	assert.GreaterOrEqual(t, quote.EstimatedMinutes, 15)
}

func TestQuote_OutOfServiceArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockZones := mocks.NewMockZoneResolver(ctrl)
	uc := NewEstimatorUC(testConfig(), mockZones)

	farAway := models.Coordinate{Latitude: 0, Longitude: 0}
	mockZones.EXPECT().
		ResolveZone(gomock.Any(), farAway).
		Return(nil, nil)

	_, err := uc.Quote(context.Background(), pickupCentro, farAway, offPeak)
	assert.ErrorIs(t, err, apperr.ErrOutOfServiceArea)
}

func TestQuote_InvalidCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewEstimatorUC(testConfig(), mocks.NewMockZoneResolver(ctrl))

	_, err := uc.Quote(context.Background(), models.Coordinate{Latitude: 200}, dropoffProvidencia, offPeak)
	assert.ErrorIs(t, err, apperr.ErrInvalidCoordinate)
}

func TestQuote_FeeMonotonicInDistance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockZones := mocks.NewMockZoneResolver(ctrl)
	uc := NewEstimatorUC(testConfig(), mockZones)

	zone := testZone()
	mockZones.EXPECT().
		ResolveZone(gomock.Any(), gomock.Any()).
		Return(zone, nil).
		AnyTimes()

	// Dropoffs progressively farther east of the pickup
	var lastTotal int64 = -1
	for _, lngOffset := range []float64{0.01, 0.05, 0.1, 0.2, 0.3} {
		dropoff := models.Coordinate{
			Latitude:  pickupCentro.Latitude,
			Longitude: pickupCentro.Longitude + lngOffset,
		}
		quote, err := uc.Quote(context.Background(), pickupCentro, dropoff, offPeak)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, quote.TotalFee, lastTotal)
		lastTotal = quote.TotalFee
	}
}

func TestQuote_RushHourSlowsETA(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockZones := mocks.NewMockZoneResolver(ctrl)
	uc := NewEstimatorUC(testConfig(), mockZones)

	zone := testZone()
	mockZones.EXPECT().
		ResolveZone(gomock.Any(), gomock.Any()).
		Return(zone, nil).
		Times(3)

	// A long leg so the travel component dominates the floor
	farDropoff := models.Coordinate{Latitude: -33.60, Longitude: -70.55}

	morningRush := time.Date(2025, 6, 16, 8, 0, 0, 0, time.Local)
	midday := time.Date(2025, 6, 16, 13, 0, 0, 0, time.Local)

	quiet, err := uc.Quote(context.Background(), pickupCentro, farDropoff, offPeak)
	require.NoError(t, err)
	lunch, err := uc.Quote(context.Background(), pickupCentro, farDropoff, midday)
	require.NoError(t, err)
	rush, err := uc.Quote(context.Background(), pickupCentro, farDropoff, morningRush)
	require.NoError(t, err)

	assert.Greater(t, rush.EstimatedMinutes, lunch.EstimatedMinutes)
	assert.Greater(t, lunch.EstimatedMinutes, quiet.EstimatedMinutes)

	// The fee must not depend on the hour
	assert.Equal(t, quiet.TotalFee, rush.TotalFee)
}

func TestQuote_ETAFloorAndZoneCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockZones := mocks.NewMockZoneResolver(ctrl)

	// A short hop never quotes below the configured floor
	cfg := testConfig()
	cfg.Pricing.MinEtaMinutes = 25
	uc := NewEstimatorUC(cfg, mockZones)

	short := testZone()
	mockZones.EXPECT().
		ResolveZone(gomock.Any(), gomock.Any()).
		Return(short, nil)

	nearby := models.Coordinate{Latitude: -33.4495, Longitude: -70.6700}
	quote, err := uc.Quote(context.Background(), pickupCentro, nearby, offPeak)
	require.NoError(t, err)
	assert.Equal(t, 25, quote.EstimatedMinutes)

	// A capped zone bounds a long leg's ETA at max minus the prep floor
	capped := testZone()
	capped.MaxDeliveryTimeMin = 45
	mockZones.EXPECT().
		ResolveZone(gomock.Any(), gomock.Any()).
		Return(capped, nil)

	farDropoff := models.Coordinate{Latitude: -33.90, Longitude: -70.30}
	quote, err = uc.Quote(context.Background(), pickupCentro, farDropoff, offPeak)
	require.NoError(t, err)
	assert.Equal(t, 30, quote.EstimatedMinutes)
}

// A zone whose delivery-time promise sits below the preparation floor must
// still never produce a negative ETA.
func TestQuote_ZoneCapBelowPrepTimeClampsToZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockZones := mocks.NewMockZoneResolver(ctrl)
	uc := NewEstimatorUC(testConfig(), mockZones)

	tight := testZone()
	tight.MaxDeliveryTimeMin = 10
	mockZones.EXPECT().
		ResolveZone(gomock.Any(), dropoffProvidencia).
		Return(tight, nil)

	quote, err := uc.Quote(context.Background(), pickupCentro, dropoffProvidencia, offPeak)
	require.NoError(t, err)
	assert.Equal(t, 0, quote.EstimatedMinutes)
}

func TestQuote_DeterministicGivenInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockZones := mocks.NewMockZoneResolver(ctrl)
	uc := NewEstimatorUC(testConfig(), mockZones)

	zone := testZone()
	mockZones.EXPECT().
		ResolveZone(gomock.Any(), dropoffProvidencia).
		Return(zone, nil).
		Times(2)

	first, err := uc.Quote(context.Background(), pickupCentro, dropoffProvidencia, offPeak)
	require.NoError(t, err)
	second, err := uc.Quote(context.Background(), pickupCentro, dropoffProvidencia, offPeak)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
