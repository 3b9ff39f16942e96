package usecase

import (
	"context"
	"time"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/services/tracking"
)

// TrackerUC implements the tracking.TrackingUC interface
type TrackerUC struct {
	trackerRepo tracking.TrackerRepo
	directory   tracking.DriverDirectory
	orders      tracking.OrderReader
	quoter      tracking.Quoter
	trackingGW  tracking.TrackingGW
}

// NewTrackerUC creates a new location tracker use case
func NewTrackerUC(
	trackerRepo tracking.TrackerRepo,
	directory tracking.DriverDirectory,
	orders tracking.OrderReader,
	quoter tracking.Quoter,
	trackingGW tracking.TrackingGW,
) *TrackerUC {
	return &TrackerUC{
		trackerRepo: trackerRepo,
		directory:   directory,
		orders:      orders,
		quoter:      quoter,
		trackingGW:  trackingGW,
	}
}

// Ingest processes one driver position sample. Samples arrive at least
// once and possibly out of order; anything older than the newest accepted
// sample is dropped so the directory never moves backwards in time.
func (uc *TrackerUC) Ingest(ctx context.Context, sample *models.LocationSampleEvent) error {
	if !sample.Location.IsValid() {
		return apperr.ErrInvalidCoordinate
	}

	lastAt, err := uc.trackerRepo.LastSampleAt(ctx, sample.DriverID)
	if err != nil {
		return err
	}
	if !lastAt.IsZero() && !sample.CapturedAt.After(lastAt) {
		logger.Debug("Dropping stale location sample",
			logger.String("driver_id", sample.DriverID.String()),
			logger.Duration("behind", lastAt.Sub(sample.CapturedAt)))
		return nil
	}

	if err := uc.trackerRepo.RecordSample(ctx, sample.DriverID, sample.Location, sample.CapturedAt); err != nil {
		return err
	}
	if err := uc.directory.UpdateLocation(ctx, sample.DriverID, sample.Location); err != nil {
		return err
	}

	uc.refreshLiveETA(ctx, sample)
	return nil
}

// refreshLiveETA recomputes the ETA from the driver's position to the
// dropoff of the order the driver is delivering. The accepted delivery
// fee on the order is never touched.
func (uc *TrackerUC) refreshLiveETA(ctx context.Context, sample *models.LocationSampleEvent) {
	record, err := uc.directory.GetDriver(ctx, sample.DriverID)
	if err != nil || record == nil || !record.CurrentOrderID.Valid {
		return
	}

	orderID := record.CurrentOrderID.UUID
	order, err := uc.orders.GetOrder(ctx, orderID)
	if err != nil {
		logger.Warn("Failed to load order for ETA refresh",
			logger.String("order_id", orderID.String()), logger.Err(err))
		return
	}
	if order.Status != models.OrderStatusDelivering {
		return
	}

	quote, err := uc.quoter.Quote(ctx, sample.Location, order.Dropoff(), time.Now())
	if err != nil {
		logger.Warn("Failed to recompute live ETA",
			logger.String("order_id", orderID.String()), logger.Err(err))
		return
	}

	event := &models.OrderETAUpdatedEvent{
		OrderID:          orderID,
		DriverID:         sample.DriverID,
		EstimatedMinutes: quote.EstimatedMinutes,
		UpdatedAt:        time.Now(),
	}
	if err := uc.trackingGW.PublishETAUpdate(ctx, event); err != nil {
		logger.Warn("Failed to publish ETA update",
			logger.String("order_id", orderID.String()), logger.Err(err))
	}
}
