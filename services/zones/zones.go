package zones

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vicholitvak/moai-logistics/services/zones ZoneRepo

// ZoneRepo defines the interface for delivery zone data access operations
type ZoneRepo interface {
	CreateZone(ctx context.Context, zone *models.DeliveryZone) error
	UpdateZone(ctx context.Context, zone *models.DeliveryZone) error
	GetZone(ctx context.Context, zoneID uuid.UUID) (*models.DeliveryZone, error)
	ListZones(ctx context.Context) ([]*models.DeliveryZone, error)
	ListActiveZones(ctx context.Context) ([]*models.DeliveryZone, error)
}

// ZoneUC defines the interface for zone registry business logic.
// Zones are owned here; all other components read them through this interface.
type ZoneUC interface {
	CreateZone(ctx context.Context, zone *models.DeliveryZone) (*models.DeliveryZone, error)
	UpdateZone(ctx context.Context, zone *models.DeliveryZone) error
	ListZones(ctx context.Context) ([]*models.DeliveryZone, error)

	// ResolveZone returns the active zone containing the point with the
	// lowest priority value (ties broken by smallest zone ID), or nil when
	// no zone covers the point.
	ResolveZone(ctx context.Context, point models.Coordinate) (*models.DeliveryZone, error)
	IsOperatingNow(zone *models.DeliveryZone, at time.Time) bool
	ListActiveOperating(ctx context.Context, at time.Time) ([]*models.DeliveryZone, error)
}
