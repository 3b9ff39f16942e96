package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/vicholitvak/moai-logistics/services/pricing"
	httphandler "github.com/vicholitvak/moai-logistics/services/pricing/handler/http"
)

// Handler combines the pricing service handlers
type Handler struct {
	quoteHTTP *httphandler.QuoteHandler
}

// NewHandler creates a new combined pricing handler
func NewHandler(pricingUC pricing.PricingUC) *Handler {
	return &Handler{quoteHTTP: httphandler.NewQuoteHandler(pricingUC)}
}

// RegisterRoutes registers the public quoting routes
func (h *Handler) RegisterRoutes(e *echo.Echo, middleware ...echo.MiddlewareFunc) {
	g := e.Group("/quotes", middleware...)
	g.POST("", h.quoteHTTP.Quote)
}
