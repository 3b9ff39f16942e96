package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vicholitvak/moai-logistics/services/tracking TrackerRepo
//go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks github.com/vicholitvak/moai-logistics/services/tracking DriverDirectory,OrderReader,Quoter,TrackingGW

// TrackerRepo defines the interface for sample bookkeeping. It remembers
// the newest accepted sample per driver so late arrivals can be dropped.
type TrackerRepo interface {
	// LastSampleAt returns the capture time of the newest accepted sample,
	// zero time when none is recorded
	LastSampleAt(ctx context.Context, driverID uuid.UUID) (time.Time, error)

	// RecordSample stores the sample's capture time and geohash
	RecordSample(ctx context.Context, driverID uuid.UUID, loc models.Coordinate, capturedAt time.Time) error
}

// DriverDirectory is the slice of the driver directory the tracker needs
type DriverDirectory interface {
	UpdateLocation(ctx context.Context, driverID uuid.UUID, loc models.Coordinate) error
	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.DriverRecord, error)
}

// OrderReader is the slice of the order service the tracker needs
type OrderReader interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
}

// Quoter is the slice of the fee estimator the tracker needs
type Quoter interface {
	Quote(ctx context.Context, pickup, dropoff models.Coordinate, at time.Time) (*models.FeeQuote, error)
}

// TrackingGW defines the interface for publishing tracking events
type TrackingGW interface {
	// PublishETAUpdate republishes a live ETA for an in-flight order
	PublishETAUpdate(ctx context.Context, event *models.OrderETAUpdatedEvent) error
}

// TrackingUC defines the interface for location sample ingestion
type TrackingUC interface {
	// Ingest processes one driver position sample. Out-of-range samples
	// return apperr.ErrInvalidCoordinate; stale samples are dropped
	// without error.
	Ingest(ctx context.Context, sample *models.LocationSampleEvent) error
}
