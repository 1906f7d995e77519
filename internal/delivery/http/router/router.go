// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taxgrid/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler: params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Order routes
	orderGroup := e.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.CreateManualOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/heatmap", r.orderHandler.Heatmap)
		orderGroup.POST("/import", r.orderHandler.ImportOrders)
	}
}
