// Package apperr defines the delivery engine's error taxonomy. Validation
// errors are returned synchronously to callers; exhausting the driver pool
// and stale location samples are expected conditions handled without an
// error (a typed planner outcome and a silent drop respectively).
package apperr

import "errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidZone       = errors.New("invalid zone boundary")
	ErrOutOfServiceArea  = errors.New("no delivery zone covers this address")
	ErrInvalidTransition = errors.New("illegal order status transition")
	ErrPermissionDenied  = errors.New("actor is not allowed to request this transition")
	ErrHasActiveOrder    = errors.New("driver has an active order")
	ErrOrderNotFound     = errors.New("order not found")
	ErrZoneNotFound      = errors.New("zone not found")
	ErrDriverNotFound    = errors.New("driver not found")
)
