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

var cartLabels = util.FieldLabels{
	"product_id": "商品",
	"quantity":   "數量",
}

// addCartItemRequest keeps quantity as a pointer so an omitted field can be
// told apart from an explicit zero.
type addCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  *int      `json:"quantity"`
}

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
}

// CartHandler holds dependencies for cart handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
	}
}

// ListItems returns the caller's cart with live prices and totals
func (h *CartHandler) ListItems(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	cart, err := h.cartUC.ListItems(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem adds a product to the cart, merging with an existing line
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleValidation(c, err, cartLabels)
	}

	input := usecase.AddCartItemInput{ProductID: req.ProductID, Quantity: 1}
	if req.Quantity != nil {
		input.Quantity = *req.Quantity
	}

	line, err := h.cartUC.AddItem(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, line)
}

// UpdateQuantity sets the quantity of a line. Zero removes it.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidParam(c, "id")
	}

	var req usecase.UpdateCartItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	line, err := h.cartUC.UpdateQuantity(c.Request().Context(), userID, lineID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if line == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusOK, line)
}

// RemoveItem deletes a line from the cart
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidParam(c, "id")
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), userID, lineID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
