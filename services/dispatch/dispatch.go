package dispatch

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks github.com/vicholitvak/moai-logistics/services/dispatch OrderStore,DriverFinder,Quoter,DispatchGW

// Outcome classifies how a planning attempt ended. Failing to place a
// driver is an expected outcome, not a transport error.
type Outcome string

const (
	// OutcomeAssigned means a driver was claimed and the order moved to
	// delivering
	OutcomeAssigned Outcome = "assigned"
	// OutcomeNoDriver means every candidate was exhausted; the order
	// stays ready and a later invocation retries
	OutcomeNoDriver Outcome = "no_driver_available"
	// OutcomeOutOfServiceArea means the dropoff no longer resolves to an
	// active zone; an operator has to intervene
	OutcomeOutOfServiceArea Outcome = "out_of_service_area"
	// OutcomeSkipped means the order was not in a plannable state
	OutcomeSkipped Outcome = "skipped"
)

// AssignmentResult reports the outcome of one planning attempt
type AssignmentResult struct {
	OrderID  uuid.UUID        `json:"order_id"`
	Outcome  Outcome          `json:"outcome"`
	DriverID uuid.NullUUID    `json:"driver_id,omitempty"`
	Quote    *models.FeeQuote `json:"quote,omitempty"`
}

// OrderStore is the slice of the order service the planner needs
type OrderStore interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
	ListByStatus(ctx context.Context, status models.OrderStatus) ([]*models.Order, error)
	AssignDriver(ctx context.Context, orderID, driverID uuid.UUID, quote *models.FeeQuote) (bool, error)
	RequestTransition(ctx context.Context, orderID uuid.UUID, target models.OrderStatus, actor models.Actor) (*models.Order, error)
}

// DriverFinder is the slice of the driver directory the planner needs
type DriverFinder interface {
	FindAvailable(ctx context.Context, near models.Coordinate, maxRadiusKm float64) ([]*models.NearbyDriver, error)
	Claim(ctx context.Context, driverID, orderID uuid.UUID) (bool, error)
	Release(ctx context.Context, driverID uuid.UUID) error
}

// Quoter is the slice of the fee estimator the planner needs
type Quoter interface {
	Quote(ctx context.Context, pickup, dropoff models.Coordinate, at time.Time) (*models.FeeQuote, error)
}

// DispatchGW defines the interface for publishing dispatch events
type DispatchGW interface {
	// PublishOperatorAlert escalates an order that cannot be planned
	PublishOperatorAlert(ctx context.Context, event *models.OperatorAlertEvent) error
}

// DispatchUC defines the interface for the assignment planner
type DispatchUC interface {
	// PlanAssignment attempts to place a driver on a ready order. Safe to
	// invoke more than once for the same order.
	PlanAssignment(ctx context.Context, orderID uuid.UUID) (*AssignmentResult, error)

	// PlanPending runs PlanAssignment over every ready order
	PlanPending(ctx context.Context) error
}
