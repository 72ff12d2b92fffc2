// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	WebhookHandler  *handler.WebhookHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	webhookHandler  *handler.WebhookHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		webhookHandler:  params.WebhookHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Gateway webhooks authenticate by signature, not by token
	e.POST("/webhooks/payment", r.webhookHandler.HandlePaymentWebhook)

	// Cart routes serve guests (session header) and users (bearer token) alike
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:productID", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productID", r.cartHandler.RemoveItem)
	}
	e.POST("/cart/merge", r.cartHandler.MergeCart, r.authMiddleware.Authenticate)

	// Checkout and orders require authentication
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("", r.checkoutHandler.Checkout)
		checkoutGroup.POST("/quote", r.checkoutHandler.Quote)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.POST("/:id/cancel", r.orderHandler.CancelOrder)
		orderGroup.GET("/:id/pickup-qr", r.orderHandler.PickupQR)
	}

	// Operator routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.POST("/inventory/:productID/adjust", r.adminHandler.AdjustStock)
		adminGroup.GET("/inventory/:productID/movements", r.adminHandler.MovementHistory)
		adminGroup.GET("/inventory/:productID/verify", r.adminHandler.VerifyLedger)
		adminGroup.POST("/orders/:id/ship", r.adminHandler.ShipOrder)
		adminGroup.POST("/orders/:id/deliver", r.adminHandler.DeliverOrder)
	}
}
