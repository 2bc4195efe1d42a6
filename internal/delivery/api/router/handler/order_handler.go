package handler

import (
	"net/http"

	"cakeshop/internal/delivery/api/middleware"
	"cakeshop/internal/delivery/api/response"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/usecase"
	"cakeshop/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const mimeImagePNG = "image/png"

var orderStatusLabels = util.FieldLabels{"status": "訂單狀態"}

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves order history and fulfilment endpoints
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
	}
}

// ListOrders returns the caller's orders, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one of the caller's orders
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidParam(c, "id")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetOrderQR returns the pickup QR code of an order as a PNG image
func (h *OrderHandler) GetOrderQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidParam(c, "id")
	}

	png, err := h.orderUC.GenerateOrderQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, no-store")

	return c.Blob(http.StatusOK, mimeImagePNG, png)
}

// AdvanceStatus moves an order to its next status. Admin only.
func (h *OrderHandler) AdvanceStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidParam(c, "id")
	}

	var req usecase.AdvanceOrderStatusInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleValidation(c, err, orderStatusLabels)
	}

	order, err := h.orderUC.AdvanceStatus(c.Request().Context(), orderID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
