package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flexmobile/shop/internal/application/services"
	"github.com/flexmobile/shop/internal/domain/entities"
	"github.com/flexmobile/shop/internal/infrastructure/logger"
	"github.com/flexmobile/shop/internal/ports"
)

// OrderHandler handles order-related requests
type OrderHandler struct {
	orders *services.OrderService
	logger *logger.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *services.OrderService, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		logger: logger,
	}
}

// Place handles public cash-on-delivery order placement
func (h *OrderHandler) Place(c echo.Context) error {
	var req ports.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.PlaceOrder(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrProductNotFound), errors.Is(err, entities.ErrProductDeleted):
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		default:
			h.logger.Error("Place order failed", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, OrderResponse{Order: order})
}

// List handles the admin order listing with products joined in
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.ListOrders(c.Request().Context())
	if err != nil {
		h.logger.Error("List orders failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list orders")
	}

	return c.JSON(http.StatusOK, OrderListResponse{Orders: orders})
}

// UpdateStatus handles admin order status transitions
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.UpdateOrderStatus(c.Request().Context(), id, entities.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrOrderNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		case errors.Is(err, entities.ErrInvalidStatus), errors.Is(err, entities.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Update order status failed", "error", err, "order_id", id)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update order")
		}
	}

	return c.JSON(http.StatusOK, OrderResponse{Order: order})
}
