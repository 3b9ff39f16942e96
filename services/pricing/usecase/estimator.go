package usecase

import (
	"context"
	"math"
	"time"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/internal/utils"
	"github.com/vicholitvak/moai-logistics/services/pricing"
)

// EstimatorUC implements the pricing.PricingUC interface
type EstimatorUC struct {
	cfg   *models.Config
	zones pricing.ZoneResolver
}

// NewEstimatorUC creates a new fee estimator use case
func NewEstimatorUC(cfg *models.Config, zones pricing.ZoneResolver) *EstimatorUC {
	return &EstimatorUC{cfg: cfg, zones: zones}
}

// Quote computes the delivery fee and ETA for a pickup/dropoff pair.
// The dropoff must resolve to an active delivery zone; otherwise the
// address is out of the service area and assignment must not proceed.
func (uc *EstimatorUC) Quote(ctx context.Context, pickup, dropoff models.Coordinate, at time.Time) (*models.FeeQuote, error) {
	distanceKm, err := utils.DistanceKm(pickup, dropoff)
	if err != nil {
		return nil, err
	}

	zone, err := uc.zones.ResolveZone(ctx, dropoff)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, apperr.ErrOutOfServiceArea
	}

	pc := uc.cfg.Pricing

	// Distance fee rounds up to the next currency unit
	billableKm := math.Max(0, distanceKm-pc.FreeThresholdKm)
	distanceFee := int64(math.Ceil(billableKm * float64(pc.PerKmRate)))

	quote := &models.FeeQuote{
		ZoneID:      zone.ID,
		ZoneName:    zone.Name,
		BaseFee:     pc.BaseFee,
		DistanceFee: distanceFee,
		ZoneFee:     zone.BaseFee,
		TotalFee:    pc.BaseFee + distanceFee + zone.BaseFee,
		DistanceKm:  distanceKm,
	}

	quote.EstimatedMinutes = uc.estimateMinutes(distanceKm, zone, at)

	return quote, nil
}

// estimateMinutes derives the ETA from distance at a traffic-adjusted speed,
// floored at the configured minimum and capped by the zone's maximum
// delivery time less the preparation floor when the zone defines one.
func (uc *EstimatorUC) estimateMinutes(distanceKm float64, zone *models.DeliveryZone, at time.Time) int {
	pc := uc.cfg.Pricing

	effectiveSpeed := pc.BaseSpeedKmh / uc.trafficMultiplier(at)
	travelMinutes := int(math.Ceil(distanceKm / effectiveSpeed * 60))
	eta := pc.PrepTimeMinutes + travelMinutes

	if eta < pc.MinEtaMinutes {
		eta = pc.MinEtaMinutes
	}
	if zone.MaxDeliveryTimeMin > 0 {
		ceiling := zone.MaxDeliveryTimeMin - pc.PrepTimeMinutes
		// A zone promising less than the preparation floor cannot cap
		// below zero
		if ceiling < 0 {
			ceiling = 0
		}
		if eta > ceiling {
			eta = ceiling
		}
	}

	return eta
}

// trafficMultiplier returns the congestion factor for the local hour.
// Rush windows slow the effective speed; the multiplier divides it.
func (uc *EstimatorUC) trafficMultiplier(at time.Time) float64 {
	tc := uc.cfg.Traffic
	hour := at.Hour()

	switch {
	case hour >= tc.MorningRushStart && hour < tc.MorningRushEnd:
		return tc.RushMultiplier
	case hour >= tc.EveningRushStart && hour < tc.EveningRushEnd:
		return tc.RushMultiplier
	case hour >= tc.MiddayStart && hour < tc.MiddayEnd:
		return tc.MiddayMultiplier
	default:
		return 1.0
	}
}
