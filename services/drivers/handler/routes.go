package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go"

	"github.com/vicholitvak/moai-logistics/services/drivers"
	httphandler "github.com/vicholitvak/moai-logistics/services/drivers/handler/http"
)

// Handler combines the driver service handlers
type Handler struct {
	driverUC   drivers.DriverUC
	driverHTTP *httphandler.DriverHandler
	subs       []*nats.Subscription
}

// NewHandler creates a new combined driver handler
func NewHandler(driverUC drivers.DriverUC) *Handler {
	return &Handler{
		driverUC:   driverUC,
		driverHTTP: httphandler.NewDriverHandler(driverUC),
	}
}

// RegisterRoutes registers the driver-facing routes
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware ...echo.MiddlewareFunc) {
	g := e.Group("/drivers", authMiddleware...)
	g.PUT("/presence", h.driverHTTP.SetPresence)
	g.GET("/:id", h.driverHTTP.GetDriver)
}

// Close drains the NATS subscriptions
func (h *Handler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
}
