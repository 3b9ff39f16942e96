package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vicholitvak/moai-logistics/services/orders OrderRepo
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/vicholitvak/moai-logistics/services/orders OrderGW
//go:generate mockgen -destination=mocks/mock_quoter.go -package=mocks github.com/vicholitvak/moai-logistics/services/orders Quoter

// OrderRepo defines the interface for order persistence. Status writes are
// compare-and-set: they apply only when the stored status still matches
// the expected one, so concurrent transition requests serialize.
type OrderRepo interface {
	CreateOrder(ctx context.Context, order *models.Order) error

	// GetOrder returns the order, apperr.ErrOrderNotFound if absent
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)

	ListByStatus(ctx context.Context, status models.OrderStatus) ([]*models.Order, error)

	// UpdateStatus applies from -> to and stamps the target status time.
	// Returns false when the stored status no longer matches from.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to models.OrderStatus, at time.Time) (bool, error)

	// AssignDriver records the winning driver and the accepted quote
	// snapshot. Applies only while the order is ready and unassigned.
	AssignDriver(ctx context.Context, orderID, driverID uuid.UUID, quote *models.FeeQuote) (bool, error)
}

// Quoter is the slice of the fee estimator the order service needs
type Quoter interface {
	Quote(ctx context.Context, pickup, dropoff models.Coordinate, at time.Time) (*models.FeeQuote, error)
}

// OrderGW defines the interface for publishing order effect records.
// Transitions never execute side effects inline; they emit these records
// for the responsible collaborator to act on.
type OrderGW interface {
	PublishStatusChanged(ctx context.Context, event *models.OrderStatusChangedEvent) error
	PublishAssignmentRequested(ctx context.Context, event *models.AssignmentRequestedEvent) error
	PublishDriverRelease(ctx context.Context, event *models.DriverReleaseRequestedEvent) error
	PublishLoyaltyAccrual(ctx context.Context, event *models.LoyaltyAccrualRequestedEvent) error
}

// CreateOrderInput carries the fields a customer supplies for a new order
type CreateOrderInput struct {
	CustomerID uuid.UUID         `json:"customer_id"`
	CookID     uuid.UUID         `json:"cook_id"`
	Pickup     models.Coordinate `json:"pickup"`
	Dropoff    models.Coordinate `json:"dropoff"`
}

// OrderUC defines the interface for the order state machine
type OrderUC interface {
	// CreateOrder prices and opens a new pending order. The dropoff must
	// be inside the service area.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*models.Order, error)

	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)

	ListByStatus(ctx context.Context, status models.OrderStatus) ([]*models.Order, error)

	// RequestTransition moves the order to target on behalf of actor.
	// Illegal moves return apperr.ErrInvalidTransition; moves the actor's
	// role may not request return apperr.ErrPermissionDenied.
	RequestTransition(ctx context.Context, orderID uuid.UUID, target models.OrderStatus, actor models.Actor) (*models.Order, error)

	// AssignDriver persists the dispatch outcome on a ready order
	AssignDriver(ctx context.Context, orderID, driverID uuid.UUID, quote *models.FeeQuote) (bool, error)
}
