package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vicholitvak/moai-logistics/internal/pkg/apperr"
	"github.com/vicholitvak/moai-logistics/internal/pkg/logger"
	"github.com/vicholitvak/moai-logistics/internal/pkg/models"
	"github.com/vicholitvak/moai-logistics/internal/utils"
	"github.com/vicholitvak/moai-logistics/services/pricing"
)

// QuoteHandler handles the fee quoting HTTP surface
type QuoteHandler struct {
	pricingUC pricing.PricingUC
}

// NewQuoteHandler creates a new quote HTTP handler
func NewQuoteHandler(pricingUC pricing.PricingUC) *QuoteHandler {
	return &QuoteHandler{pricingUC: pricingUC}
}

// QuoteRequest is the request body for POST /quotes
type QuoteRequest struct {
	Pickup  models.Coordinate `json:"pickup"`
	Dropoff models.Coordinate `json:"dropoff"`
}

// Quote handles POST /quotes
func (h *QuoteHandler) Quote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	quote, err := h.pricingUC.Quote(c.Request().Context(), req.Pickup, req.Dropoff, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrInvalidCoordinate):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, apperr.ErrOutOfServiceArea):
			return utils.UnprocessableResponse(c, "delivery not available to this address")
		}
		logger.Error("Failed to compute quote", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to compute quote")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quote", quote)
}
