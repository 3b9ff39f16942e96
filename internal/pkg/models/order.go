package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusAccepted   OrderStatus = "accepted"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Role identifies the kind of actor requesting a transition
type Role string

const (
	RoleCustomer Role = "customer"
	RoleCook     Role = "cook"
	RoleDriver   Role = "driver"
	// RoleSystem is the dispatch planner and other internal callers
	RoleSystem Role = "system"
)

// Actor is the identity behind a transition request
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role Role      `json:"role"`
}

// orderTransitions is the authoritative transition table. Statuses absent
// from a row's target list are illegal from that row's state; delivered
// and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusAccepted:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:  {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:      {OrderStatusDelivering},
	OrderStatusDelivering: {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

// CanTransition reports whether from -> to appears in the transition table
func CanTransition(from, to OrderStatus) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the legal target statuses from a given state
func AllowedTransitions(from OrderStatus) []OrderStatus {
	return orderTransitions[from]
}

// RoleCanRequest reports whether a role may drive the from -> to transition.
// The cook moves an order through the kitchen, the driver confirms delivery,
// the customer may only cancel while the order is still pending, and the
// system (dispatch planner) commits ready -> delivering.
func RoleCanRequest(role Role, from, to OrderStatus) bool {
	if role == RoleSystem {
		return true
	}
	switch to {
	case OrderStatusAccepted, OrderStatusPreparing, OrderStatusReady:
		return role == RoleCook
	case OrderStatusDelivered:
		return role == RoleDriver
	case OrderStatusCancelled:
		if role == RoleCustomer {
			return from == OrderStatusPending
		}
		return role == RoleCook
	default:
		return false
	}
}

// StatusTimestamps records when each status was entered. Stored as jsonb.
type StatusTimestamps map[OrderStatus]time.Time

// Value implements driver.Valuer for jsonb storage
func (st StatusTimestamps) Value() (driver.Value, error) {
	if st == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(st)
}

// Scan implements sql.Scanner for jsonb storage
func (st *StatusTimestamps) Scan(src interface{}) error {
	if src == nil {
		*st = StatusTimestamps{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("unsupported status timestamps type %T", src)
	}
	return json.Unmarshal(data, st)
}

// Order represents a marketplace order. Status is owned exclusively by the
// order state machine; DriverID is set once per delivery attempt by the
// dispatch planner.
type Order struct {
	OrderID          uuid.UUID        `json:"order_id" db:"id"`
	CustomerID       uuid.UUID        `json:"customer_id" db:"customer_id"`
	CookID           uuid.UUID        `json:"cook_id" db:"cook_id"`
	DriverID         uuid.NullUUID    `json:"driver_id,omitempty" db:"driver_id"`
	Status           OrderStatus      `json:"status" db:"status"`
	PickupLatitude   float64          `json:"-" db:"pickup_latitude"`
	PickupLongitude  float64          `json:"-" db:"pickup_longitude"`
	DropoffLatitude  float64          `json:"-" db:"dropoff_latitude"`
	DropoffLongitude float64          `json:"-" db:"dropoff_longitude"`
	DeliveryFee      int64            `json:"delivery_fee" db:"delivery_fee"`
	EstimatedMinutes int              `json:"estimated_minutes" db:"estimated_minutes"`
	Timestamps       StatusTimestamps `json:"status_timestamps" db:"status_timestamps"`
	CreatedAt        time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at" db:"updated_at"`
}

// Pickup returns the pickup coordinate as a value
func (o *Order) Pickup() Coordinate {
	return Coordinate{Latitude: o.PickupLatitude, Longitude: o.PickupLongitude}
}

// Dropoff returns the dropoff coordinate as a value
func (o *Order) Dropoff() Coordinate {
	return Coordinate{Latitude: o.DropoffLatitude, Longitude: o.DropoffLongitude}
}

// IsTerminal reports whether the order has reached a final state
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled
}
