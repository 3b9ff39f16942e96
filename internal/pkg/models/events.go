package models

import (
	"time"

	"github.com/google/uuid"
)

// Effect records are the state machine's only side-effect mechanism: they
// describe work for external collaborators (dispatch, notifications,
// loyalty) and are published to NATS, never executed inline.

// AssignmentRequestedEvent asks the dispatch planner to find a driver
// for an order that just became ready.
type AssignmentRequestedEvent struct {
	OrderID     uuid.UUID `json:"order_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// DriverReleaseRequestedEvent asks the driver directory to return a driver
// to the available pool after a delivery completes or an order with an
// assigned driver is cancelled.
type DriverReleaseRequestedEvent struct {
	DriverID    uuid.UUID `json:"driver_id"`
	OrderID     uuid.UUID `json:"order_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// LoyaltyAccrualRequestedEvent asks the loyalty collaborator to credit a
// customer for a delivered order.
type LoyaltyAccrualRequestedEvent struct {
	CustomerID uuid.UUID `json:"customer_id"`
	OrderID    uuid.UUID `json:"order_id"`
	OrderTotal int64     `json:"order_total"`
	AccruedAt  time.Time `json:"accrued_at"`
}

// OrderStatusChangedEvent notifies collaborators of an applied transition
type OrderStatusChangedEvent struct {
	OrderID   uuid.UUID   `json:"order_id"`
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	ActorID   uuid.UUID   `json:"actor_id"`
	ActorRole Role        `json:"actor_role"`
	ChangedAt time.Time   `json:"changed_at"`
}

// OrderETAUpdatedEvent republishes the live ETA for an in-flight order.
// It never alters the accepted delivery fee.
type OrderETAUpdatedEvent struct {
	OrderID          uuid.UUID `json:"order_id"`
	DriverID         uuid.UUID `json:"driver_id"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// OrderPositionUpdatedEvent forwards a driver position sample to the
// order currently assigned to that driver.
type OrderPositionUpdatedEvent struct {
	OrderID  uuid.UUID  `json:"order_id"`
	DriverID uuid.UUID  `json:"driver_id"`
	Location Coordinate `json:"location"`
}

// LocationSampleEvent is a raw periodic driver position sample as ingested
// from the driver-facing surface.
type LocationSampleEvent struct {
	DriverID   uuid.UUID  `json:"driver_id"`
	Location   Coordinate `json:"location"`
	CapturedAt time.Time  `json:"captured_at"`
}

// OperatorAlertEvent escalates a condition that needs a human operator,
// such as a ready order whose dropoff is out of the service area.
type OperatorAlertEvent struct {
	OrderID  uuid.UUID `json:"order_id"`
	Reason   string    `json:"reason"`
	RaisedAt time.Time `json:"raised_at"`
}
