package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go"

	"github.com/vicholitvak/moai-logistics/services/tracking"
	httphandler "github.com/vicholitvak/moai-logistics/services/tracking/handler/http"
)

// Handler combines the tracking service handlers
type Handler struct {
	trackingUC   tracking.TrackingUC
	locationHTTP *httphandler.LocationHandler
	subs         []*nats.Subscription
}

// NewHandler creates a new combined tracking handler
func NewHandler(trackingUC tracking.TrackingUC) *Handler {
	return &Handler{
		trackingUC:   trackingUC,
		locationHTTP: httphandler.NewLocationHandler(trackingUC),
	}
}

// RegisterRoutes registers the driver-facing location routes
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware ...echo.MiddlewareFunc) {
	g := e.Group("/locations", authMiddleware...)
	g.POST("", h.locationHTTP.PostSample)
}

// Close drains the NATS subscriptions
func (h *Handler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
}
