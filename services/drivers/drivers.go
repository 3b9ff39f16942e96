package drivers

import (
	"context"

	"github.com/google/uuid"

	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vicholitvak/moai-logistics/services/drivers DriverRepo
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/vicholitvak/moai-logistics/services/drivers DriverGW

// DriverRepo defines the interface for driver dispatch-state persistence.
// The postgres row is the durable record; redis holds the availability
// pool and the geo index used for candidate searches.
type DriverRepo interface {
	// GetDriver returns the durable record, apperr.ErrDriverNotFound if absent
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.DriverRecord, error)

	// UpsertOnline stores the online flag and syncs the redis pool membership
	UpsertOnline(ctx context.Context, driverID uuid.UUID, vehicleType models.VehicleType, online bool) error

	// StoreLocation writes the driver's position hash and geo index entry
	StoreLocation(ctx context.Context, driverID uuid.UUID, loc models.Coordinate) error

	// FindNearby returns available drivers within radiusKm of the point,
	// closest first
	FindNearby(ctx context.Context, near models.Coordinate, radiusKm float64, limit int) ([]*models.NearbyDriver, error)

	// ClaimDriver atomically moves the driver from the available pool to the
	// busy pool and records the order on the row. Returns false when the
	// driver was not available.
	ClaimDriver(ctx context.Context, driverID, orderID uuid.UUID) (bool, error)

	// ReleaseDriver clears the driver's current order and, if the driver is
	// still online, returns them to the available pool. Idempotent.
	ReleaseDriver(ctx context.Context, driverID uuid.UUID) error
}

// DriverGW defines the interface for publishing driver events
type DriverGW interface {
	// PublishOrderPosition forwards a position sample onto the driver's
	// in-flight order
	PublishOrderPosition(ctx context.Context, event *models.OrderPositionUpdatedEvent) error
}

// DriverUC defines the interface for the driver directory
type DriverUC interface {
	// SetOnline toggles a driver's presence. Going offline with an active
	// order returns apperr.ErrHasActiveOrder.
	SetOnline(ctx context.Context, driverID uuid.UUID, vehicleType models.VehicleType, online bool) error

	// UpdateLocation records a position sample. Unknown drivers are a no-op.
	UpdateLocation(ctx context.Context, driverID uuid.UUID, loc models.Coordinate) error

	// FindAvailable returns claim candidates near the point, closest first
	// with a stable tie-break, possibly empty
	FindAvailable(ctx context.Context, near models.Coordinate, maxRadiusKm float64) ([]*models.NearbyDriver, error)

	// Claim reserves a driver for an order; false means a lost race
	Claim(ctx context.Context, driverID, orderID uuid.UUID) (bool, error)

	// Release returns a driver to the pool after delivery or cancellation
	Release(ctx context.Context, driverID uuid.UUID) error

	// GetDriver returns the driver's dispatch record
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.DriverRecord, error)
}
