package repository

import (
	"context"
	"database/sql"
	"encoding/json"
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

// activeZonesTTL bounds staleness of the cached active zone snapshot
const activeZonesTTL = 5 * time.Minute

const zoneColumns = `
	id, name, boundary_kind,
	center_latitude, center_longitude, radius_m,
	vertex_latitudes, vertex_longitudes,
	base_fee, priority, is_active,
	opens_at, closes_at, max_delivery_time_min,
	created_at, updated_at`

// ZoneRepo implements the zone repository over Postgres with a Redis
// snapshot cache for the active zone set.
type ZoneRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewZoneRepository creates a new zone repository
func NewZoneRepository(db *sqlx.DB, redisClient *database.RedisClient) *ZoneRepo {
	return &ZoneRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateZone inserts a new delivery zone and invalidates the active cache
func (r *ZoneRepo) CreateZone(ctx context.Context, zone *models.DeliveryZone) error {
	dto := zone.ToDTO()

	query := `
		INSERT INTO delivery_zones (
			id, name, boundary_kind,
			center_latitude, center_longitude, radius_m,
			vertex_latitudes, vertex_longitudes,
			base_fee, priority, is_active,
			opens_at, closes_at, max_delivery_time_min,
			created_at, updated_at
		) VALUES (
			:id, :name, :boundary_kind,
			:center_latitude, :center_longitude, :radius_m,
			:vertex_latitudes, :vertex_longitudes,
			:base_fee, :priority, :is_active,
			:opens_at, :closes_at, :max_delivery_time_min,
			:created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, dto); err != nil {
		return fmt.Errorf("failed to insert zone: %w", err)
	}

	r.invalidateCache(ctx)
	return nil
}

// UpdateZone replaces a zone's definition and invalidates the active cache
func (r *ZoneRepo) UpdateZone(ctx context.Context, zone *models.DeliveryZone) error {
	dto := zone.ToDTO()
	dto.UpdatedAt = time.Now()

	query := `
		UPDATE delivery_zones SET
			name = :name,
			boundary_kind = :boundary_kind,
			center_latitude = :center_latitude,
			center_longitude = :center_longitude,
			radius_m = :radius_m,
			vertex_latitudes = :vertex_latitudes,
			vertex_longitudes = :vertex_longitudes,
			base_fee = :base_fee,
			priority = :priority,
			is_active = :is_active,
			opens_at = :opens_at,
			closes_at = :closes_at,
			max_delivery_time_min = :max_delivery_time_min,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		return fmt.Errorf("failed to update zone: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperr.ErrZoneNotFound
	}

	r.invalidateCache(ctx)
	return nil
}

// GetZone retrieves a zone by ID
func (r *ZoneRepo) GetZone(ctx context.Context, zoneID uuid.UUID) (*models.DeliveryZone, error) {
	query := `SELECT ` + zoneColumns + ` FROM delivery_zones WHERE id = $1`

	var dto models.ZoneDTO
	if err := r.db.GetContext(ctx, &dto, query, zoneID); err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrZoneNotFound
		}
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}

	return dto.ToZone(), nil
}

// ListZones retrieves all zones ordered by priority then ID
func (r *ZoneRepo) ListZones(ctx context.Context) ([]*models.DeliveryZone, error) {
	query := `SELECT ` + zoneColumns + ` FROM delivery_zones ORDER BY priority, id`

	var dtos []models.ZoneDTO
	if err := r.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	zones := make([]*models.DeliveryZone, 0, len(dtos))
	for i := range dtos {
		zones = append(zones, dtos[i].ToZone())
	}
	return zones, nil
}

// ListActiveZones retrieves active zones, serving from the Redis snapshot
// when one is present. Cache misses and cache errors fall through to SQL.
func (r *ZoneRepo) ListActiveZones(ctx context.Context) ([]*models.DeliveryZone, error) {
	if cached, err := r.redisClient.Get(ctx, constants.KeyActiveZones); err == nil && cached != "" {
		var zones []*models.DeliveryZone
		if err := json.Unmarshal([]byte(cached), &zones); err == nil {
			return zones, nil
		}
		logger.Warn("Discarding unreadable active zones cache entry")
	}

	query := `SELECT ` + zoneColumns + ` FROM delivery_zones WHERE is_active = true ORDER BY priority, id`

	var dtos []models.ZoneDTO
	if err := r.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to list active zones: %w", err)
	}

	zones := make([]*models.DeliveryZone, 0, len(dtos))
	for i := range dtos {
		zones = append(zones, dtos[i].ToZone())
	}

	if data, err := json.Marshal(zones); err == nil {
		if err := r.redisClient.Set(ctx, constants.KeyActiveZones, string(data), activeZonesTTL); err != nil {
			logger.Warn("Failed to cache active zones", logger.Err(err))
		}
	}

	return zones, nil
}

func (r *ZoneRepo) invalidateCache(ctx context.Context) {
	if err := r.redisClient.Delete(ctx, constants.KeyActiveZones); err != nil {
		logger.Warn("Failed to invalidate active zones cache", logger.Err(err))
	}
}
