package handler

import (
	"net/http"

	"cakeshop/internal/delivery/api/middleware"
	"cakeshop/internal/delivery/api/response"
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/usecase"
	"cakeshop/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var accountLabels = util.FieldLabels{
	"email":    "電子郵件",
	"password": "密碼",
	"name":     "姓名",
	"address":  "地址",
	"phone":    "電話",
}

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// AccountHandler holds dependencies for registration, login and profile handlers
type AccountHandler struct {
	accountUC usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
	}
}

// Register creates a customer account
func (h *AccountHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleValidation(c, err, accountLabels)
	}

	customer, err := h.accountUC.Register(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, customer)
}

// Login exchanges credentials for an access token
func (h *AccountHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleValidation(c, err, accountLabels)
	}

	out, err := h.accountUC.Login(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// GetProfile returns the caller's profile
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	customer, err := h.accountUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// UpdateProfile replaces the caller's editable profile fields
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleValidation(c, err, accountLabels)
	}

	customer, err := h.accountUC.UpdateProfile(c.Request().Context(), userID, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}
