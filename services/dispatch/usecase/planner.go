package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	nrpkg "github.com/vicholitvak/moai-logistics/internal/pkg/newrelic"
	"github.com/vicholitvak/moai-logistics/services/dispatch"
)

// systemActor commits planner-driven transitions
var systemActor = models.Actor{ID: uuid.Nil, Role: models.RoleSystem}

// PlannerUC implements the dispatch.DispatchUC interface
type PlannerUC struct {
	cfg        *models.Config
	orders     dispatch.OrderStore
	drivers    dispatch.DriverFinder
	quoter     dispatch.Quoter
	dispatchGW dispatch.DispatchGW
}

// NewPlannerUC creates a new assignment planner use case
func NewPlannerUC(
	cfg *models.Config,
	orders dispatch.OrderStore,
	drivers dispatch.DriverFinder,
	quoter dispatch.Quoter,
	dispatchGW dispatch.DispatchGW,
) *PlannerUC {
	return &PlannerUC{
		cfg:        cfg,
		orders:     orders,
		drivers:    drivers,
		quoter:     quoter,
		dispatchGW: dispatchGW,
	}
}

// PlanAssignment attempts to place a driver on a ready order. Requests
// arrive at least once, so every step re-checks state: an order that
// already left ready is skipped, and an order with a driver already
// persisted only retries the delivering transition.
func (uc *PlannerUC) PlanAssignment(ctx context.Context, orderID uuid.UUID) (*dispatch.AssignmentResult, error) {
	order, err := uc.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusReady {
		return &dispatch.AssignmentResult{OrderID: orderID, Outcome: dispatch.OutcomeSkipped}, nil
	}

	// A previous invocation claimed a driver but lost the process before
	// committing the transition
	if order.DriverID.Valid {
		if _, err := uc.orders.RequestTransition(ctx, orderID, models.OrderStatusDelivering, systemActor); err != nil {
			return nil, err
		}
		return &dispatch.AssignmentResult{
			OrderID:  orderID,
			Outcome:  dispatch.OutcomeAssigned,
			DriverID: order.DriverID,
		}, nil
	}

	quote, err := uc.quoter.Quote(ctx, order.Pickup(), order.Dropoff(), time.Now())
	if err != nil {
		if errors.Is(err, apperr.ErrOutOfServiceArea) {
			uc.raiseOperatorAlert(ctx, orderID, "dropoff outside the active service area")
			return &dispatch.AssignmentResult{OrderID: orderID, Outcome: dispatch.OutcomeOutOfServiceArea}, nil
		}
		return nil, err
	}

	var candidates []*models.NearbyDriver
	err = nrpkg.WithSegment(ctx, "planner.findCandidates", func() error {
		candidates, err = uc.drivers.FindAvailable(ctx, order.Pickup(), uc.cfg.Assignment.SearchRadiusKm)
		return err
	})
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		claimed, err := uc.drivers.Claim(ctx, candidate.DriverID, orderID)
		if err != nil {
			return nil, err
		}
		if !claimed {
			// Lost the race for this driver; the next candidate may be free
			continue
		}

		assigned, err := uc.orders.AssignDriver(ctx, orderID, candidate.DriverID, quote)
		if err != nil {
			uc.releaseClaim(ctx, candidate.DriverID)
			return nil, err
		}
		if !assigned {
			// The order left ready while we were claiming
			uc.releaseClaim(ctx, candidate.DriverID)
			return &dispatch.AssignmentResult{OrderID: orderID, Outcome: dispatch.OutcomeSkipped}, nil
		}

		if _, err := uc.orders.RequestTransition(ctx, orderID, models.OrderStatusDelivering, systemActor); err != nil {
			// Driver and quote are persisted; the retry path above
			// finishes the transition on the next invocation
			return nil, err
		}

		logger.Info("Order assigned",
			logger.String("order_id", orderID.String()),
			logger.String("driver_id", candidate.DriverID.String()),
			logger.Float64("distance_km", candidate.DistanceKm))

		return &dispatch.AssignmentResult{
			OrderID:  orderID,
			Outcome:  dispatch.OutcomeAssigned,
			DriverID: uuid.NullUUID{UUID: candidate.DriverID, Valid: true},
			Quote:    quote,
		}, nil
	}

	logger.Info("No driver available",
		logger.String("order_id", orderID.String()),
		logger.Int("candidates", len(candidates)))
	return &dispatch.AssignmentResult{OrderID: orderID, Outcome: dispatch.OutcomeNoDriver}, nil
}

// PlanPending runs one planning pass over every ready order
func (uc *PlannerUC) PlanPending(ctx context.Context) error {
	ready, err := uc.orders.ListByStatus(ctx, models.OrderStatusReady)
	if err != nil {
		return err
	}

	for _, order := range ready {
		if _, err := uc.PlanAssignment(ctx, order.OrderID); err != nil {
			logger.Warn("Planning attempt failed",
				logger.String("order_id", order.OrderID.String()),
				logger.Err(err))
		}
	}
	return nil
}

func (uc *PlannerUC) releaseClaim(ctx context.Context, driverID uuid.UUID) {
	if err := uc.drivers.Release(ctx, driverID); err != nil {
		logger.Error("Failed to release claimed driver",
			logger.String("driver_id", driverID.String()), logger.Err(err))
	}
}

func (uc *PlannerUC) raiseOperatorAlert(ctx context.Context, orderID uuid.UUID, reason string) {
	event := &models.OperatorAlertEvent{
		OrderID:  orderID,
		Reason:   reason,
		RaisedAt: time.Now(),
	}
	if err := uc.dispatchGW.PublishOperatorAlert(ctx, event); err != nil {
		logger.Warn("Failed to publish operator alert",
			logger.String("order_id", orderID.String()), logger.Err(err))
	}
}
