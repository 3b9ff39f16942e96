package pricing

import (
	"context"
	"time"

	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_resolver.go -package=mocks github.com/vicholitvak/moai-logistics/services/pricing ZoneResolver

// ZoneResolver is the slice of the zone registry the estimator needs
type ZoneResolver interface {
	ResolveZone(ctx context.Context, point models.Coordinate) (*models.DeliveryZone, error)
}

// PricingUC defines the interface for fee and ETA estimation.
// Quote is deterministic given (pickup, dropoff, at).
type PricingUC interface {
	Quote(ctx context.Context, pickup, dropoff models.Coordinate, at time.Time) (*models.FeeQuote, error)
}
