package handler

import (
	"net/http"
	"testing"

	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	mockusecase "cakeshop/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCatalogServer(t *testing.T) (*testServer, *mockusecase.MockCatalogUsecase) {
	t.Helper()

	catalogUC := mockusecase.NewMockCatalogUsecase(t)
	srv := newTestServer(t, uuid.New())
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC})

	g := srv.e.Group("/api/v1/products")
	g.GET("", h.ListProducts)
	g.GET("/featured", h.ListFeatured)
	g.GET("/:id", h.GetProduct)

	return srv, catalogUC
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	srv, catalogUC := newCatalogServer(t)
	catalogUC.EXPECT().ListProducts(mock.Anything).Return([]*entity.Product{{ID: uuid.New(), Name: "巧克力蛋糕"}}, nil)

	rec, _ := srv.do(t, http.MethodGet, "/api/v1/products", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "巧克力蛋糕")
}

func TestCatalogHandler_ListFeatured(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
		wantError bool
	}{
		{name: "configured default", query: "", wantLimit: 0},
		{name: "explicit limit", query: "?limit=3", wantLimit: 3},
		{name: "non numeric limit", query: "?limit=abc", wantError: true},
		{name: "zero limit", query: "?limit=0", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, catalogUC := newCatalogServer(t)
			if !tt.wantError {
				catalogUC.EXPECT().ListFeatured(mock.Anything, tt.wantLimit).Return([]*entity.Product{}, nil)
			}

			rec, env := srv.do(t, http.MethodGet, "/api/v1/products/featured"+tt.query, "", "")
			if tt.wantError {
				assertErrorCode(t, rec, env, http.StatusBadRequest, "VALIDATION_FAILED")

				return
			}
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	productID := uuid.New()

	t.Run("missing", func(t *testing.T) {
		srv, catalogUC := newCatalogServer(t)
		catalogUC.EXPECT().GetProduct(mock.Anything, productID).Return(nil, domainerrors.ErrProductNotFound)

		rec, env := srv.do(t, http.MethodGet, "/api/v1/products/"+productID.String(), "", "")
		assertErrorCode(t, rec, env, http.StatusNotFound, "PRODUCT_NOT_FOUND")
	})

	t.Run("malformed id", func(t *testing.T) {
		srv, _ := newCatalogServer(t)

		rec, env := srv.do(t, http.MethodGet, "/api/v1/products/xyz", "", "")
		assertErrorCode(t, rec, env, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}
