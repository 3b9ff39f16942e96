package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/services/orders"
)

// OrderUC implements the orders.OrderUC interface
type OrderUC struct {
	orderRepo orders.OrderRepo
	quoter    orders.Quoter
	orderGW   orders.OrderGW
}

// NewOrderUC creates a new order state machine use case
func NewOrderUC(orderRepo orders.OrderRepo, quoter orders.Quoter, orderGW orders.OrderGW) *OrderUC {
	return &OrderUC{
		orderRepo: orderRepo,
		quoter:    quoter,
		orderGW:   orderGW,
	}
}

// CreateOrder prices and opens a new pending order. Quoting also proves
// the dropoff sits inside an active delivery zone.
func (uc *OrderUC) CreateOrder(ctx context.Context, input *orders.CreateOrderInput) (*models.Order, error) {
	if !input.Pickup.IsValid() || !input.Dropoff.IsValid() {
		return nil, apperr.ErrInvalidCoordinate
	}

	now := time.Now()
	quote, err := uc.quoter.Quote(ctx, input.Pickup, input.Dropoff, now)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderID:          uuid.New(),
		CustomerID:       input.CustomerID,
		CookID:           input.CookID,
		Status:           models.OrderStatusPending,
		PickupLatitude:   input.Pickup.Latitude,
		PickupLongitude:  input.Pickup.Longitude,
		DropoffLatitude:  input.Dropoff.Latitude,
		DropoffLongitude: input.Dropoff.Longitude,
		DeliveryFee:      quote.TotalFee,
		EstimatedMinutes: quote.EstimatedMinutes,
		Timestamps:       models.StatusTimestamps{models.OrderStatusPending: now},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order created",
		logger.String("order_id", order.OrderID.String()),
		logger.Int64("delivery_fee", order.DeliveryFee))
	return order, nil
}

// GetOrder returns the order by ID
func (uc *OrderUC) GetOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	return uc.orderRepo.GetOrder(ctx, orderID)
}

// ListByStatus returns orders currently in the given status
func (uc *OrderUC) ListByStatus(ctx context.Context, status models.OrderStatus) ([]*models.Order, error) {
	return uc.orderRepo.ListByStatus(ctx, status)
}

// RequestTransition moves the order to target on behalf of actor. The
// legality table decides whether the move exists; the role map decides
// whether this actor may request it; the conditional update decides the
// race. Effects are emitted only after the transition actually applied.
func (uc *OrderUC) RequestTransition(ctx context.Context, orderID uuid.UUID, target models.OrderStatus, actor models.Actor) (*models.Order, error) {
	order, err := uc.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	from := order.Status
	if !models.CanTransition(from, target) {
		return nil, apperr.ErrInvalidTransition
	}
	if !models.RoleCanRequest(actor.Role, from, target) {
		return nil, apperr.ErrPermissionDenied
	}

	now := time.Now()
	applied, err := uc.orderRepo.UpdateStatus(ctx, orderID, from, target, now)
	if err != nil {
		return nil, err
	}
	if !applied {
		// A concurrent transition moved the order first
		return nil, apperr.ErrInvalidTransition
	}

	order.Status = target
	if order.Timestamps == nil {
		order.Timestamps = models.StatusTimestamps{}
	}
	order.Timestamps[target] = now
	order.UpdatedAt = now

	uc.emitEffects(ctx, order, from, target, actor, now)
	return order, nil
}

// AssignDriver persists the dispatch outcome on a ready order
func (uc *OrderUC) AssignDriver(ctx context.Context, orderID, driverID uuid.UUID, quote *models.FeeQuote) (bool, error) {
	return uc.orderRepo.AssignDriver(ctx, orderID, driverID, quote)
}

// emitEffects publishes the effect records for an applied transition.
// Publishing failures are logged, never surfaced: the transition already
// happened and collaborators retry from their own side.
func (uc *OrderUC) emitEffects(ctx context.Context, order *models.Order, from, to models.OrderStatus, actor models.Actor, at time.Time) {
	statusEvent := &models.OrderStatusChangedEvent{
		OrderID:   order.OrderID,
		From:      from,
		To:        to,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		ChangedAt: at,
	}
	if err := uc.orderGW.PublishStatusChanged(ctx, statusEvent); err != nil {
		logger.Warn("Failed to publish status change",
			logger.String("order_id", order.OrderID.String()), logger.Err(err))
	}

	switch to {
	case models.OrderStatusReady:
		event := &models.AssignmentRequestedEvent{OrderID: order.OrderID, RequestedAt: at}
		if err := uc.orderGW.PublishAssignmentRequested(ctx, event); err != nil {
			logger.Warn("Failed to publish assignment request",
				logger.String("order_id", order.OrderID.String()), logger.Err(err))
		}

	case models.OrderStatusDelivered:
		uc.emitDriverRelease(ctx, order, at)
		event := &models.LoyaltyAccrualRequestedEvent{
			CustomerID: order.CustomerID,
			OrderID:    order.OrderID,
			OrderTotal: order.DeliveryFee,
			AccruedAt:  at,
		}
		if err := uc.orderGW.PublishLoyaltyAccrual(ctx, event); err != nil {
			logger.Warn("Failed to publish loyalty accrual",
				logger.String("order_id", order.OrderID.String()), logger.Err(err))
		}

	case models.OrderStatusCancelled:
		if order.DriverID.Valid {
			uc.emitDriverRelease(ctx, order, at)
		}
	}
}

func (uc *OrderUC) emitDriverRelease(ctx context.Context, order *models.Order, at time.Time) {
	if !order.DriverID.Valid {
		return
	}
	event := &models.DriverReleaseRequestedEvent{
		DriverID:    order.DriverID.UUID,
		OrderID:     order.OrderID,
		RequestedAt: at,
	}
	if err := uc.orderGW.PublishDriverRelease(ctx, event); err != nil {
		logger.Warn("Failed to publish driver release",
			logger.String("order_id", order.OrderID.String()), logger.Err(err))
	}
}
