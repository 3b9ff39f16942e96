package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/vicholitvak/moai-logistics/services/orders"
	httphandler "github.com/vicholitvak/moai-logistics/services/orders/handler/http"
)

// Handler combines the order service handlers
type Handler struct {
	orderHTTP *httphandler.OrderHandler
}

// NewHandler creates a new combined order handler
func NewHandler(orderUC orders.OrderUC) *Handler {
	return &Handler{orderHTTP: httphandler.NewOrderHandler(orderUC)}
}

// RegisterRoutes registers the order routes
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware ...echo.MiddlewareFunc) {
	g := e.Group("/orders", authMiddleware...)
	g.POST("", h.orderHTTP.CreateOrder)
	g.GET("/:id", h.orderHTTP.GetOrder)
	g.GET("", h.orderHTTP.ListOrders)
	g.POST("/:id/transition", h.orderHTTP.Transition)
}
