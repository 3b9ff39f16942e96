package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/constants"
	"github.com/vicholitvak/moai-logistics/internal/pkg/database"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
)

// locationTTL expires stale driver positions out of the directory
const locationTTL = 2 * time.Minute

// DriverRepo implements driver dispatch-state persistence. Postgres owns
// the durable record; redis owns the availability pools and the geo index.
// The SMove between the available and busy sets is the claim decision
// point: exactly one caller wins it.
type DriverRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *sqlx.DB, redisClient *database.RedisClient) *DriverRepo {
	return &DriverRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// GetDriver returns the durable driver record
func (r *DriverRepo) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.DriverRecord, error) {
	var dto models.DriverDTO
	query := `
		SELECT id, is_online, is_available, vehicle_type, current_order_id, updated_at
		FROM drivers
		WHERE id = $1
	`
	if err := r.db.GetContext(ctx, &dto, query, driverID); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	record := dto.ToRecord()
	if loc, err := r.getLocation(ctx, driverID); err == nil && loc != nil {
		record.CurrentLocation = loc
	}
	return record, nil
}

// UpsertOnline stores the online flag and syncs the redis pool membership.
// Coming online enters the available pool only when the row carries no
// current order; a driver reconnecting mid-delivery stays in the busy set.
// Going offline leaves every pool and drops the geo index entry.
func (r *DriverRepo) UpsertOnline(ctx context.Context, driverID uuid.UUID, vehicleType models.VehicleType, online bool) error {
	query := `
		INSERT INTO drivers (id, is_online, is_available, vehicle_type, current_order_id, updated_at)
		VALUES ($1, $2, $2, $3, NULL, $4)
		ON CONFLICT (id) DO UPDATE SET
			is_online = $2,
			is_available = $2 AND drivers.current_order_id IS NULL,
			vehicle_type = $3,
			updated_at = $4
		RETURNING is_available
	`
	var available bool
	if err := r.db.GetContext(ctx, &available, query, driverID, online, string(vehicleType), time.Now()); err != nil {
		return fmt.Errorf("failed to upsert driver presence: %w", err)
	}

	id := driverID.String()
	if online {
		if !available {
			return nil
		}
		if err := r.redisClient.SAdd(ctx, constants.KeyAvailableDrivers, id); err != nil {
			return fmt.Errorf("failed to enter available pool: %w", err)
		}
		return nil
	}

	if err := r.redisClient.SRem(ctx, constants.KeyAvailableDrivers, id); err != nil {
		return fmt.Errorf("failed to leave available pool: %w", err)
	}
	if err := r.redisClient.SRem(ctx, constants.KeyBusyDrivers, id); err != nil {
		return fmt.Errorf("failed to leave busy pool: %w", err)
	}
	if err := r.redisClient.ZRem(ctx, constants.KeyDriverGeo, id); err != nil {
		logger.Warn("Failed to drop geo index entry", logger.String("driver_id", id), logger.Err(err))
	}
	return r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyDriverLocation, id))
}

// StoreLocation writes the driver's position hash and geo index entry
func (r *DriverRepo) StoreLocation(ctx context.Context, driverID uuid.UUID, loc models.Coordinate) error {
	id := driverID.String()
	key := fmt.Sprintf(constants.KeyDriverLocation, id)

	fields := map[string]interface{}{
		constants.FieldLatitude:  loc.Latitude,
		constants.FieldLongitude: loc.Longitude,
		constants.FieldTimestamp: time.Now().Unix(),
	}
	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, locationTTL); err != nil {
		logger.Warn("Failed to set location TTL", logger.String("driver_id", id), logger.Err(err))
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, loc.Longitude, loc.Latitude, id); err != nil {
		return fmt.Errorf("failed to update geo index: %w", err)
	}
	return nil
}

// FindNearby returns available drivers within radiusKm of the point,
// closest first. Drivers in the geo index but no longer in the available
// pool are filtered out.
func (r *DriverRepo) FindNearby(ctx context.Context, near models.Coordinate, radiusKm float64, limit int) ([]*models.NearbyDriver, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, near.Longitude, near.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to search geo index: %w", err)
	}

	nearby := make([]*models.NearbyDriver, 0, len(locations))
	for _, loc := range locations {
		if limit > 0 && len(nearby) >= limit {
			break
		}

		available, err := r.redisClient.SIsMember(ctx, constants.KeyAvailableDrivers, loc.Name)
		if err != nil {
			logger.Warn("Failed to check pool membership", logger.String("driver_id", loc.Name), logger.Err(err))
			continue
		}
		if !available {
			continue
		}

		driverID, err := uuid.Parse(loc.Name)
		if err != nil {
			logger.Warn("Skipping malformed geo index member", logger.String("member", loc.Name))
			continue
		}

		nearby = append(nearby, &models.NearbyDriver{
			DriverID:   driverID,
			Location:   models.Coordinate{Latitude: loc.Latitude, Longitude: loc.Longitude},
			DistanceKm: loc.Dist,
		})
	}
	return nearby, nil
}

// ClaimDriver atomically reserves a driver for an order. The SMove from
// the available set to the busy set decides the race; the row update then
// records the order, and a failed row update rolls the SMove back.
func (r *DriverRepo) ClaimDriver(ctx context.Context, driverID, orderID uuid.UUID) (bool, error) {
	id := driverID.String()

	moved, err := r.redisClient.SMove(ctx, constants.KeyAvailableDrivers, constants.KeyBusyDrivers, id)
	if err != nil {
		return false, fmt.Errorf("failed to claim driver: %w", err)
	}
	if !moved {
		return false, nil
	}

	query := `
		UPDATE drivers
		SET is_available = FALSE, current_order_id = $2, updated_at = $3
		WHERE id = $1 AND is_online = TRUE AND current_order_id IS NULL
	`
	result, err := r.db.ExecContext(ctx, query, driverID, orderID, time.Now())
	if err != nil {
		r.rollbackClaim(ctx, id)
		return false, fmt.Errorf("failed to record claim: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		r.rollbackClaim(ctx, id)
		return false, fmt.Errorf("failed to read claim result: %w", err)
	}
	if rows == 0 {
		r.rollbackClaim(ctx, id)
		return false, nil
	}
	return true, nil
}

func (r *DriverRepo) rollbackClaim(ctx context.Context, driverID string) {
	if _, err := r.redisClient.SMove(ctx, constants.KeyBusyDrivers, constants.KeyAvailableDrivers, driverID); err != nil {
		logger.Error("Failed to roll back driver claim", logger.String("driver_id", driverID), logger.Err(err))
	}
}

// ReleaseDriver clears the driver's current order and returns a still
// online driver to the available pool. Safe to call more than once.
func (r *DriverRepo) ReleaseDriver(ctx context.Context, driverID uuid.UUID) error {
	query := `
		UPDATE drivers
		SET is_available = is_online, current_order_id = NULL, updated_at = $2
		WHERE id = $1
		RETURNING is_online
	`
	var online bool
	if err := r.db.GetContext(ctx, &online, query, driverID, time.Now()); err != nil {
		if err == sql.ErrNoRows {
			return apperr.ErrDriverNotFound
		}
		return fmt.Errorf("failed to release driver: %w", err)
	}

	id := driverID.String()
	if err := r.redisClient.SRem(ctx, constants.KeyBusyDrivers, id); err != nil {
		return fmt.Errorf("failed to leave busy pool: %w", err)
	}
	if online {
		if err := r.redisClient.SAdd(ctx, constants.KeyAvailableDrivers, id); err != nil {
			return fmt.Errorf("failed to re-enter available pool: %w", err)
		}
	}
	return nil
}

func (r *DriverRepo) getLocation(ctx context.Context, driverID uuid.UUID) (*models.Coordinate, error) {
	key := fmt.Sprintf(constants.KeyDriverLocation, driverID.String())
	values, err := r.redisClient.HMGet(ctx, key, constants.FieldLatitude, constants.FieldLongitude)
	if err != nil {
		return nil, err
	}
	if len(values) != 2 || values[0] == "" || values[1] == "" {
		return nil, nil
	}

	var loc models.Coordinate
	if _, err := fmt.Sscanf(values[0], "%f", &loc.Latitude); err != nil {
		return nil, err
	}
	if _, err := fmt.Sscanf(values[1], "%f", &loc.Longitude); err != nil {
		return nil, err
	}
	return &loc, nil
}
