package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/services/drivers"
)

// DirectoryUC implements the drivers.DriverUC interface
type DirectoryUC struct {
	cfg        *models.Config
	driverRepo drivers.DriverRepo
	driverGW   drivers.DriverGW
}

// NewDirectoryUC creates a new driver directory use case
func NewDirectoryUC(cfg *models.Config, driverRepo drivers.DriverRepo, driverGW drivers.DriverGW) *DirectoryUC {
	return &DirectoryUC{
		cfg:        cfg,
		driverRepo: driverRepo,
		driverGW:   driverGW,
	}
}

// SetOnline toggles a driver's presence. A driver holding an active order
// cannot go offline; the delivery must complete or be cancelled first.
func (uc *DirectoryUC) SetOnline(ctx context.Context, driverID uuid.UUID, vehicleType models.VehicleType, online bool) error {
	if !online {
		record, err := uc.driverRepo.GetDriver(ctx, driverID)
		if err != nil && !errors.Is(err, apperr.ErrDriverNotFound) {
			return err
		}
		if record != nil && record.CurrentOrderID.Valid {
			return apperr.ErrHasActiveOrder
		}
	}

	if err := uc.driverRepo.UpsertOnline(ctx, driverID, vehicleType, online); err != nil {
		return err
	}

	logger.Info("Driver presence changed",
		logger.String("driver_id", driverID.String()),
		logger.Bool("online", online))
	return nil
}

// UpdateLocation records a position sample. Samples for unknown drivers
// are dropped. When the driver is on a delivery the position is forwarded
// onto the order.
func (uc *DirectoryUC) UpdateLocation(ctx context.Context, driverID uuid.UUID, loc models.Coordinate) error {
	if !loc.IsValid() {
		return apperr.ErrInvalidCoordinate
	}

	record, err := uc.driverRepo.GetDriver(ctx, driverID)
	if err != nil {
		if errors.Is(err, apperr.ErrDriverNotFound) {
			logger.Debug("Dropping sample for unknown driver", logger.String("driver_id", driverID.String()))
			return nil
		}
		return err
	}
	if !record.IsOnline {
		return nil
	}

	if err := uc.driverRepo.StoreLocation(ctx, driverID, loc); err != nil {
		return err
	}

	if record.CurrentOrderID.Valid {
		event := &models.OrderPositionUpdatedEvent{
			OrderID:  record.CurrentOrderID.UUID,
			DriverID: driverID,
			Location: loc,
		}
		if err := uc.driverGW.PublishOrderPosition(ctx, event); err != nil {
			logger.Warn("Failed to forward position to order",
				logger.String("order_id", record.CurrentOrderID.UUID.String()),
				logger.Err(err))
		}
	}
	return nil
}

// FindAvailable returns claim candidates near the point, closest first.
// Equidistant candidates order by driver ID so repeated searches agree.
func (uc *DirectoryUC) FindAvailable(ctx context.Context, near models.Coordinate, maxRadiusKm float64) ([]*models.NearbyDriver, error) {
	if !near.IsValid() {
		return nil, apperr.ErrInvalidCoordinate
	}

	candidates, err := uc.driverRepo.FindNearby(ctx, near, maxRadiusKm, uc.cfg.Assignment.MaxCandidates)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].DriverID.String() < candidates[j].DriverID.String()
	})
	return candidates, nil
}

// Claim reserves a driver for an order; false means another order won
func (uc *DirectoryUC) Claim(ctx context.Context, driverID, orderID uuid.UUID) (bool, error) {
	claimed, err := uc.driverRepo.ClaimDriver(ctx, driverID, orderID)
	if err != nil {
		return false, err
	}
	if claimed {
		logger.Info("Driver claimed",
			logger.String("driver_id", driverID.String()),
			logger.String("order_id", orderID.String()))
	}
	return claimed, nil
}

// Release returns a driver to the pool. Releasing an already released
// driver is a no-op.
func (uc *DirectoryUC) Release(ctx context.Context, driverID uuid.UUID) error {
	if err := uc.driverRepo.ReleaseDriver(ctx, driverID); err != nil {
		if errors.Is(err, apperr.ErrDriverNotFound) {
			return nil
		}
		return err
	}

	logger.Info("Driver released", logger.String("driver_id", driverID.String()))
	return nil
}

// GetDriver returns the driver's dispatch record
func (uc *DirectoryUC) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.DriverRecord, error) {
	return uc.driverRepo.GetDriver(ctx, driverID)
}
