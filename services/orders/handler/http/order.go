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
	"github.com/vicholitvak/moai-logistics/services/orders"
)

// OrderHandler handles the order HTTP surface
type OrderHandler struct {
	orderUC orders.OrderUC
}

// NewOrderHandler creates a new order HTTP handler
func NewOrderHandler(orderUC orders.OrderUC) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// CreateOrderRequest is the request body for POST /orders
type CreateOrderRequest struct {
	CookID  uuid.UUID         `json:"cook_id"`
	Pickup  models.Coordinate `json:"pickup"`
	Dropoff models.Coordinate `json:"dropoff"`
}

// CreateOrder handles POST /orders. The customer identity comes from the
// bearer token.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok || actor.Role != models.RoleCustomer {
		return utils.ForbiddenResponse(c, "customer token required")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	input := &orders.CreateOrderInput{
		CustomerID: actor.ID,
		CookID:     req.CookID,
		Pickup:     req.Pickup,
		Dropoff:    req.Dropoff,
	}
	order, err := h.orderUC.CreateOrder(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrInvalidCoordinate):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, apperr.ErrOutOfServiceArea):
			return utils.UnprocessableResponse(c, "delivery not available to this address")
		}
		logger.Error("Failed to create order", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to create order")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Order created", order)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid order id")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		if errors.Is(err, apperr.ErrOrderNotFound) {
			return utils.NotFoundResponse(c, "order not found")
		}
		logger.Error("Failed to get order", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to get order")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Order", order)
}

// ListOrders handles GET /orders?status=ready
func (h *OrderHandler) ListOrders(c echo.Context) error {
	status := models.OrderStatus(c.QueryParam("status"))
	if status == "" {
		return utils.BadRequestResponse(c, "status query parameter required")
	}

	list, err := h.orderUC.ListByStatus(c.Request().Context(), status)
	if err != nil {
		logger.Error("Failed to list orders", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to list orders")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Orders", list)
}

// TransitionRequest is the request body for POST /orders/:id/transition
type TransitionRequest struct {
	Target models.OrderStatus `json:"target"`
}

// Transition handles POST /orders/:id/transition. The requesting actor's
// role comes from the bearer token and bounds what they may request.
func (h *OrderHandler) Transition(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "authentication required")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid order id")
	}

	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	order, err := h.orderUC.RequestTransition(c.Request().Context(), orderID, req.Target, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrOrderNotFound):
			return utils.NotFoundResponse(c, "order not found")
		case errors.Is(err, apperr.ErrInvalidTransition):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, apperr.ErrPermissionDenied):
			return utils.ForbiddenResponse(c, err.Error())
		}
		logger.Error("Failed to apply transition", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "failed to apply transition")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transition applied", order)
}
