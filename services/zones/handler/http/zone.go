package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/internal/utils"
	"github.com/vicholitvak/moai-logistics/services/zones"
)

// ZoneHandler handles the administrative zone HTTP surface
type ZoneHandler struct {
	zoneUC zones.ZoneUC
}

// NewZoneHandler creates a new zone HTTP handler
func NewZoneHandler(zoneUC zones.ZoneUC) *ZoneHandler {
	return &ZoneHandler{zoneUC: zoneUC}
}

// CreateZone handles POST /zones
func (h *ZoneHandler) CreateZone(c echo.Context) error {
	var zone models.DeliveryZone
	if err := c.Bind(&zone); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	created, err := h.zoneUC.CreateZone(c.Request().Context(), &zone)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidZone) || errors.Is(err, apperr.ErrInvalidCoordinate) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create zone", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to create zone")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Zone created", created)
}

// UpdateZone handles PUT /zones/:id
func (h *ZoneHandler) UpdateZone(c echo.Context) error {
	var zone models.DeliveryZone
	if err := c.Bind(&zone); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.zoneUC.UpdateZone(c.Request().Context(), &zone); err != nil {
		switch {
		case errors.Is(err, apperr.ErrZoneNotFound):
			return utils.NotFoundResponse(c, "zone not found")
		case errors.Is(err, apperr.ErrInvalidZone), errors.Is(err, apperr.ErrInvalidCoordinate):
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to update zone", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to update zone")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Zone updated", zone)
}

// ListZones handles GET /zones
func (h *ZoneHandler) ListZones(c echo.Context) error {
	list, err := h.zoneUC.ListZones(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list zones", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list zones")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Zones", list)
}

// ResolveZone handles POST /zones/resolve
func (h *ZoneHandler) ResolveZone(c echo.Context) error {
	var point models.Coordinate
	if err := c.Bind(&point); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	zone, err := h.zoneUC.ResolveZone(c.Request().Context(), point)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCoordinate) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to resolve zone", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to resolve zone")
	}
	if zone == nil {
		return utils.UnprocessableResponse(c, "delivery not available to this address")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Zone resolved", zone)
}
