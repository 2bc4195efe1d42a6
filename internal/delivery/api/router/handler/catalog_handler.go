// Package handler holds the echo handlers of the JSON API.
package handler

import (
	"net/http"
	"strconv"

	"cakeshop/internal/delivery/api/response"
	"cakeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves the public product catalog
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
	}
}

// ListProducts returns every product sorted by name
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// ListFeatured returns a random selection of products with images.
// The optional limit query parameter overrides the configured size.
func (h *CatalogHandler) ListFeatured(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return response.InvalidParam(c, "limit")
		}
		limit = n
	}

	products, err := h.catalogUC.ListFeatured(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct returns a single product
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.InvalidParam(c, "id")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}
