package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/vicholitvak/moai-logistics/services/zones"
	httphandler "github.com/vicholitvak/moai-logistics/services/zones/handler/http"
)

// Handler combines the zone service handlers
type Handler struct {
	zoneHTTP *httphandler.ZoneHandler
}

// NewHandler creates a new combined zone handler
func NewHandler(zoneUC zones.ZoneUC) *Handler {
	return &Handler{zoneHTTP: httphandler.NewZoneHandler(zoneUC)}
}

// RegisterRoutes registers the administrative zone routes
func (h *Handler) RegisterRoutes(e *echo.Echo, adminMiddleware ...echo.MiddlewareFunc) {
	admin := e.Group("/zones", adminMiddleware...)
	admin.POST("", h.zoneHTTP.CreateZone)
	admin.PUT("/:id", h.zoneHTTP.UpdateZone)
	admin.GET("", h.zoneHTTP.ListZones)
	admin.POST("/resolve", h.zoneHTTP.ResolveZone)
}
