package handler

import (
	"net/http"
	"testing"

	"cakeshop/internal/domain/entity"
	domainerrors "cakeshop/internal/domain/errors"
	mockusecase "cakeshop/internal/mocks/usecase"
	"cakeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderServer(t *testing.T, userID uuid.UUID) (*testServer, *mockusecase.MockOrderUsecase) {
	t.Helper()

	orderUC := mockusecase.NewMockOrderUsecase(t)
	srv := newTestServer(t, userID)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC})

	g := srv.e.Group("/api/v1/orders", srv.auth.Authenticate)
	g.GET("", h.ListOrders)
	g.GET("/:id", h.GetOrder)
	g.GET("/:id/qr", h.GetOrderQR)

	admin := srv.e.Group("/api/v1/admin", srv.auth.Authenticate, srv.auth.RequireRole(entity.RoleAdmin))
	admin.PATCH("/orders/:id/status", h.AdvanceStatus)

	return srv, orderUC
}

func TestOrderHandler_ListOrders(t *testing.T) {
	userID := uuid.New()
	srv, orderUC := newOrderServer(t, userID)
	orderUC.EXPECT().ListOrders(mock.Anything, userID).Return([]*entity.Order{}, nil)

	rec, env := srv.do(t, http.MethodGet, "/api/v1/orders", customerToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestOrderHandler_GetOrder(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()

	t.Run("foreign order looks missing", func(t *testing.T) {
		srv, orderUC := newOrderServer(t, userID)
		orderUC.EXPECT().GetOrder(mock.Anything, userID, orderID).Return(nil, domainerrors.ErrOrderNotFound)

		rec, env := srv.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String(), customerToken, "")
		assertErrorCode(t, rec, env, http.StatusNotFound, "ORDER_NOT_FOUND")
	})

	t.Run("owned order", func(t *testing.T) {
		srv, orderUC := newOrderServer(t, userID)
		orderUC.EXPECT().GetOrder(mock.Anything, userID, orderID).
			Return(&entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusShipped}, nil)

		rec, _ := srv.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String(), customerToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOrderHandler_GetOrderQR(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	srv, orderUC := newOrderServer(t, userID)

	png := []byte("\x89PNG\r\n\x1a\n")
	orderUC.EXPECT().GenerateOrderQR(mock.Anything, userID, orderID).Return(png, nil)

	rec, _ := srv.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String()+"/qr", customerToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOrderHandler_AdvanceStatus(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	path := "/api/v1/admin/orders/" + orderID.String() + "/status"

	t.Run("customer is forbidden", func(t *testing.T) {
		srv, _ := newOrderServer(t, userID)

		rec, env := srv.do(t, http.MethodPatch, path, customerToken, `{"status":"confirmed"}`)
		assertErrorCode(t, rec, env, http.StatusForbidden, "FORBIDDEN")
	})

	t.Run("admin advances", func(t *testing.T) {
		srv, orderUC := newOrderServer(t, userID)
		orderUC.EXPECT().AdvanceStatus(mock.Anything, orderID, usecase.AdvanceOrderStatusInput{Status: entity.OrderStatusConfirmed}).
			Return(&entity.Order{ID: orderID, Status: entity.OrderStatusConfirmed}, nil)

		rec, _ := srv.do(t, http.MethodPatch, path, adminToken, `{"status":"confirmed"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing status", func(t *testing.T) {
		srv, _ := newOrderServer(t, userID)

		rec, env := srv.do(t, http.MethodPatch, path, adminToken, `{}`)
		assertErrorCode(t, rec, env, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Equal(t, []string{"status"}, fieldNames(env))
	})

	t.Run("illegal transition", func(t *testing.T) {
		srv, orderUC := newOrderServer(t, userID)
		orderUC.EXPECT().AdvanceStatus(mock.Anything, orderID, mock.Anything).
			Return(nil, domainerrors.ErrInvalidStatusTransition)

		rec, env := srv.do(t, http.MethodPatch, path, adminToken, `{"status":"pending"}`)
		assertErrorCode(t, rec, env, http.StatusConflict, "INVALID_STATUS_TRANSITION")
	})
}
