package handler

import (
	"net/http"

	"cakeshop/internal/delivery/api/middleware"
	"cakeshop/internal/delivery/api/response"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
}

// CheckoutHandler holds dependencies for checkout handlers
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
	}
}

// Prepare returns the cart and recipient defaults for the checkout form
func (h *CheckoutHandler) Prepare(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	preview, err := h.checkoutUC.PrepareCheckout(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, preview)
}

// PlaceOrder converts the cart into an order.
// Field validation happens in the usecase so the rules hold for every caller.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req usecase.CheckoutInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	order, err := h.checkoutUC.PlaceOrder(c.Request().Context(), userID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}
