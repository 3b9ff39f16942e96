package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	"github.com/vicholitvak/moai-logistics/internal/pkg/middleware"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/internal/utils"
	"github.com/vicholitvak/moai-logistics/services/tracking"
)

// LocationHandler handles the driver-facing location HTTP surface
type LocationHandler struct {
	trackingUC tracking.TrackingUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(trackingUC tracking.TrackingUC) *LocationHandler {
	return &LocationHandler{trackingUC: trackingUC}
}

// SampleRequest is the request body for POST /locations
type SampleRequest struct {
	Location   models.Coordinate `json:"location"`
	CapturedAt time.Time         `json:"captured_at"`
}

// PostSample handles POST /locations. The driver identity comes from the
// bearer token; samples without a capture time use the arrival time.
func (h *LocationHandler) PostSample(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok || actor.Role != models.RoleDriver {
		return utils.ForbiddenResponse(c, "driver token required")
	}

	var req SampleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.CapturedAt.IsZero() {
		req.CapturedAt = time.Now()
	}

	sample := &models.LocationSampleEvent{
		DriverID:   actor.ID,
		Location:   req.Location,
		CapturedAt: req.CapturedAt,
	}
	if err := h.trackingUC.Ingest(c.Request().Context(), sample); err != nil {
		if errors.Is(err, apperr.ErrInvalidCoordinate) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to ingest location sample", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to ingest sample")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Sample accepted", nil)
}
