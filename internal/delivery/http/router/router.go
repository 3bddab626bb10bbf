// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"platter/internal/delivery/http/middleware"
	"platter/internal/delivery/http/router/handler"
	"platter/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	RestaurantHandler *handler.RestaurantHandler
	MealHandler       *handler.MealHandler
	OrderHandler      *handler.OrderHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	restaurantHandler *handler.RestaurantHandler
	mealHandler       *handler.MealHandler
	orderHandler      *handler.OrderHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		restaurantHandler: params.RestaurantHandler,
		mealHandler:       params.MealHandler,
		orderHandler:      params.OrderHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Route-level gating covers coarse role membership; ownership and blocklist
// decisions live in the usecases.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Account routes. The self endpoints serve any authenticated account;
	// everything else is administrator-only.
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/self", r.userHandler.GetSelf)
		userGroup.PATCH("/self", r.userHandler.UpdateSelf)

		adminGroup := userGroup.Group("")
		adminGroup.Use(r.authMiddleware.RequireRoles(entity.RoleAdmin))
		{
			adminGroup.GET("", r.userHandler.List)
			adminGroup.POST("", r.userHandler.Create)
			adminGroup.GET("/:id", r.userHandler.Get)
			adminGroup.PATCH("/:id", r.userHandler.Update)
			adminGroup.DELETE("/:id", r.userHandler.Delete)
		}
	}

	// Restaurant routes
	restaurantGroup := e.Group("/restaurants")
	restaurantGroup.Use(r.authMiddleware.Authenticate)
	{
		restaurantGroup.GET("", r.restaurantHandler.List)
		restaurantGroup.POST("", r.restaurantHandler.Create)
		restaurantGroup.GET("/owned", r.restaurantHandler.ListOwned)
		restaurantGroup.GET("/:id", r.restaurantHandler.Get)
		restaurantGroup.PATCH("/:id", r.restaurantHandler.Update)
		restaurantGroup.DELETE("/:id", r.restaurantHandler.Delete)

		// Owner-side customer management and the ordering denylist.
		restaurantGroup.GET("/:id/users", r.restaurantHandler.ListCustomers)
		restaurantGroup.PATCH("/:id/block", r.restaurantHandler.Block)
		restaurantGroup.PATCH("/:id/unblock", r.restaurantHandler.Unblock)
	}

	// Meal routes
	mealGroup := e.Group("/meals")
	mealGroup.Use(r.authMiddleware.Authenticate)
	{
		mealGroup.GET("", r.mealHandler.List)
		mealGroup.POST("", r.mealHandler.Create)
		mealGroup.GET("/:id", r.mealHandler.Get)
		mealGroup.PATCH("/:id", r.mealHandler.Update)
		mealGroup.DELETE("/:id", r.mealHandler.Delete)
	}

	// Order routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.POST("", r.orderHandler.Place)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus)
		orderGroup.DELETE("/:id", r.orderHandler.Delete)
	}
}
