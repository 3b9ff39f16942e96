package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	"github.com/vicholitvak/moai-logistics/internal/pkg/middleware"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/internal/utils"
	"github.com/vicholitvak/moai-logistics/services/drivers"
)

// DriverHandler handles the driver-facing HTTP surface
type DriverHandler struct {
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver HTTP handler
func NewDriverHandler(driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{driverUC: driverUC}
}

// PresenceRequest is the request body for PUT /drivers/presence
type PresenceRequest struct {
	Online      bool               `json:"online"`
	VehicleType models.VehicleType `json:"vehicle_type"`
}

// SetPresence handles PUT /drivers/presence. The driver identity comes
// from the bearer token, never from the body.
func (h *DriverHandler) SetPresence(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok || actor.Role != models.RoleDriver {
		return utils.ForbiddenResponse(c, "driver token required")
	}

	var req PresenceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	err := h.driverUC.SetOnline(c.Request().Context(), actor.ID, req.VehicleType, req.Online)
	if err != nil {
		if errors.Is(err, apperr.ErrHasActiveOrder) {
			return utils.ConflictResponse(c, "cannot go offline with an active order")
		}
		logger.Error("Failed to change driver presence", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to change presence")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Presence updated", map[string]bool{"online": req.Online})
}

// GetDriver handles GET /drivers/:id
func (h *DriverHandler) GetDriver(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid driver id")
	}

	record, err := h.driverUC.GetDriver(c.Request().Context(), driverID)
	if err != nil {
		if errors.Is(err, apperr.ErrDriverNotFound) {
			return utils.NotFoundResponse(c, "driver not found")
		}
		logger.Error("Failed to get driver", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver", record)
}
