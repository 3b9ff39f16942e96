package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/internal/utils"
	"github.com/vicholitvak/moai-logistics/services/zones"
)

// ZoneUC implements the zones.ZoneUC interface
type ZoneUC struct {
	zoneRepo zones.ZoneRepo
}

// NewZoneUC creates a new zone registry use case
func NewZoneUC(zoneRepo zones.ZoneRepo) *ZoneUC {
	return &ZoneUC{zoneRepo: zoneRepo}
}

// CreateZone validates and stores a new delivery zone
func (uc *ZoneUC) CreateZone(ctx context.Context, zone *models.DeliveryZone) (*models.DeliveryZone, error) {
	if err := validateBoundary(zone.Boundary); err != nil {
		return nil, err
	}

	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	now := time.Now()
	zone.CreatedAt = now
	zone.UpdatedAt = now

	if err := uc.zoneRepo.CreateZone(ctx, zone); err != nil {
		return nil, err
	}

	logger.Info("Created delivery zone",
		logger.String("zone_id", zone.ID.String()),
		logger.String("name", zone.Name))
	return zone, nil
}

// UpdateZone validates and replaces a zone definition
func (uc *ZoneUC) UpdateZone(ctx context.Context, zone *models.DeliveryZone) error {
	if err := validateBoundary(zone.Boundary); err != nil {
		return err
	}
	return uc.zoneRepo.UpdateZone(ctx, zone)
}

// ListZones returns every configured zone
func (uc *ZoneUC) ListZones(ctx context.Context) ([]*models.DeliveryZone, error) {
	return uc.zoneRepo.ListZones(ctx)
}

// ResolveZone returns the active zone covering the point with the lowest
// priority value; ties are broken by the smallest zone ID so resolution is
// deterministic. A nil zone means the point is out of the service area.
func (uc *ZoneUC) ResolveZone(ctx context.Context, point models.Coordinate) (*models.DeliveryZone, error) {
	if !point.IsValid() {
		return nil, apperr.ErrInvalidCoordinate
	}

	active, err := uc.zoneRepo.ListActiveZones(ctx)
	if err != nil {
		return nil, err
	}

	var best *models.DeliveryZone
	for _, zone := range active {
		contains, err := utils.ZoneContains(zone, point)
		if err != nil {
			// A misconfigured zone must not break resolution for the rest
			logger.Warn("Skipping zone with invalid boundary",
				logger.String("zone_id", zone.ID.String()),
				logger.Err(err))
			continue
		}
		if !contains {
			continue
		}
		if best == nil || zoneLess(zone, best) {
			best = zone
		}
	}

	return best, nil
}

// zoneLess orders zones by priority then ID for deterministic tie-breaks
func zoneLess(a, b *models.DeliveryZone) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return strings.Compare(a.ID.String(), b.ID.String()) < 0
}

// IsOperatingNow compares the local time against the zone's operating hours.
// Zones without configured hours are always operating. A window whose close
// precedes its open spans midnight.
func (uc *ZoneUC) IsOperatingNow(zone *models.DeliveryZone, at time.Time) bool {
	if zone.Hours == nil {
		return true
	}

	opens, err := minutesOfDay(zone.Hours.Opens)
	if err != nil {
		logger.Warn("Zone has unparseable opening time",
			logger.String("zone_id", zone.ID.String()),
			logger.String("opens", zone.Hours.Opens))
		return true
	}
	closes, err := minutesOfDay(zone.Hours.Closes)
	if err != nil {
		logger.Warn("Zone has unparseable closing time",
			logger.String("zone_id", zone.ID.String()),
			logger.String("closes", zone.Hours.Closes))
		return true
	}

	now := at.Hour()*60 + at.Minute()
	if opens <= closes {
		return now >= opens && now < closes
	}
	// Overnight window
	return now >= opens || now < closes
}

// ListActiveOperating returns zones that are both active and currently open
func (uc *ZoneUC) ListActiveOperating(ctx context.Context, at time.Time) ([]*models.DeliveryZone, error) {
	active, err := uc.zoneRepo.ListActiveZones(ctx)
	if err != nil {
		return nil, err
	}

	operating := make([]*models.DeliveryZone, 0, len(active))
	for _, zone := range active {
		if uc.IsOperatingNow(zone, at) {
			operating = append(operating, zone)
		}
	}
	return operating, nil
}

func validateBoundary(b models.ZoneBoundary) error {
	switch b.Kind {
	case models.BoundaryCircle:
		if !b.Center.IsValid() {
			return apperr.ErrInvalidCoordinate
		}
		if b.RadiusM <= 0 {
			return apperr.ErrInvalidZone
		}
	case models.BoundaryPolygon:
		if len(b.Vertices) < 3 {
			return apperr.ErrInvalidZone
		}
		for _, v := range b.Vertices {
			if !v.IsValid() {
				return apperr.ErrInvalidCoordinate
			}
		}
	default:
		return apperr.ErrInvalidZone
	}
	return nil
}

func minutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
