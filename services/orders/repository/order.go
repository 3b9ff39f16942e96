package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

const orderColumns = `
	id, customer_id, cook_id, driver_id, status,
	pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
	delivery_fee, estimated_minutes, status_timestamps,
	created_at, updated_at`

// OrderRepo implements order persistence over Postgres. The status column
// is only ever written through conditional updates keyed on the expected
// current status.
type OrderRepo struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrder inserts a new order row
func (r *OrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (
			id, customer_id, cook_id, driver_id, status,
			pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			delivery_fee, estimated_minutes, status_timestamps,
			created_at, updated_at
		) VALUES (
			:id, :customer_id, :cook_id, :driver_id, :status,
			:pickup_latitude, :pickup_longitude, :dropoff_latitude, :dropoff_longitude,
			:delivery_fee, :estimated_minutes, :status_timestamps,
			:created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, order); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// GetOrder returns the order by ID
func (r *OrderRepo) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if err := r.db.GetContext(ctx, &order, query, orderID); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

// ListByStatus returns orders currently in the given status, oldest first
func (r *OrderRepo) ListByStatus(ctx context.Context, status models.OrderStatus) ([]*models.Order, error) {
	var list []*models.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY created_at ASC`
	if err := r.db.SelectContext(ctx, &list, query, status); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return list, nil
}

// UpdateStatus applies from -> to only if the stored status still matches
// from, merging the target's timestamp into the status history. A false
// return means a concurrent transition got there first.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to models.OrderStatus, at time.Time) (bool, error) {
	query := `
		UPDATE orders
		SET status = $3, status_timestamps = status_timestamps || $4, updated_at = $5
		WHERE id = $1 AND status = $2
	`
	stamp := models.StatusTimestamps{to: at}
	result, err := r.db.ExecContext(ctx, query, orderID, from, to, stamp, at)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read status update result: %w", err)
	}
	return rows > 0, nil
}

// AssignDriver records the winning driver and the accepted quote snapshot.
// Applies only while the order is still ready and unassigned, so a stale
// planner invocation cannot overwrite a completed assignment.
func (r *OrderRepo) AssignDriver(ctx context.Context, orderID, driverID uuid.UUID, quote *models.FeeQuote) (bool, error) {
	query := `
		UPDATE orders
		SET driver_id = $2, delivery_fee = $3, estimated_minutes = $4, updated_at = $5
		WHERE id = $1 AND status = 'ready' AND driver_id IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, orderID, driverID, quote.TotalFee, quote.EstimatedMinutes, time.Now())
	if err != nil {
		return false, fmt.Errorf("failed to assign driver: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read assignment result: %w", err)
	}
	return rows > 0, nil
}
