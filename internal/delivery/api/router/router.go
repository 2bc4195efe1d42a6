// Package router contains routing setup for the JSON API.
package router

import (
	"cakeshop/internal/delivery/api/middleware"
	"cakeshop/internal/delivery/api/router/handler"
	"cakeshop/internal/domain/entity"
	"cakeshop/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	AccountHandler  *handler.AccountHandler
	ImageHandler    *handler.ImageHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	accountHandler  *handler.AccountHandler
	imageHandler    *handler.ImageHandler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		accountHandler:  params.AccountHandler,
		imageHandler:    params.ImageHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics.Enabled() {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}
	e.GET("/images/:key", r.imageHandler.Serve)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	apiV1 := e.Group("/api/v1")

	// Public catalog
	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.GET("/featured", r.catalogHandler.ListFeatured)
		productsGroup.GET("/:id", r.catalogHandler.GetProduct)
	}

	// Everything below requires a logged in customer
	auth := r.authMiddleware.Authenticate

	profileGroup := apiV1.Group("/profile", auth)
	{
		profileGroup.GET("", r.accountHandler.GetProfile)
		profileGroup.PUT("", r.accountHandler.UpdateProfile)
	}

	cartGroup := apiV1.Group("/cart", auth)
	{
		cartGroup.GET("", r.cartHandler.ListItems)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	checkoutGroup := apiV1.Group("/checkout", auth)
	{
		checkoutGroup.GET("", r.checkoutHandler.Prepare)
		checkoutGroup.POST("", r.checkoutHandler.PlaceOrder)
	}

	ordersGroup := apiV1.Group("/orders", auth)
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/qr", r.orderHandler.GetOrderQR)
	}

	// Admin routes need the "admin" role on top of authentication
	adminGroup := apiV1.Group("/admin", auth, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.AdvanceStatus)
	}
}
