// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"phecalc/internal/delivery/api/middleware"
	"phecalc/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler            *handler.UserHandler
	FoodTypeHandler        *handler.FoodTypeHandler
	FoodHandler            *handler.FoodHandler
	FoodConsumptionHandler *handler.FoodConsumptionHandler
	DailyIntakeHandler     *handler.DailyIntakeHandler
	AuthMiddleware         *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler            *handler.UserHandler
	foodTypeHandler        *handler.FoodTypeHandler
	foodHandler            *handler.FoodHandler
	foodConsumptionHandler *handler.FoodConsumptionHandler
	dailyIntakeHandler     *handler.DailyIntakeHandler
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:            params.UserHandler,
		foodTypeHandler:        params.FoodTypeHandler,
		foodHandler:            params.FoodHandler,
		foodConsumptionHandler: params.FoodConsumptionHandler,
		dailyIntakeHandler:     params.DailyIntakeHandler,
		authMiddleware:         params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.userHandler.GetProfile)
		profileGroup.PUT("", r.userHandler.UpdateProfile)
		profileGroup.DELETE("", r.userHandler.DeleteAccount)
		profileGroup.PUT("/password", r.userHandler.ChangePassword)
		profileGroup.PUT("/username", r.userHandler.ChangeUsername)
	}

	foodTypesGroup := apiV1.Group("/food-types")
	{
		foodTypesGroup.POST("", r.foodTypeHandler.CreateFoodType)
		foodTypesGroup.GET("", r.foodTypeHandler.ListFoodTypes)
		foodTypesGroup.GET("/:id", r.foodTypeHandler.GetFoodType)
		foodTypesGroup.PUT("/:id", r.foodTypeHandler.UpdateFoodType)
		foodTypesGroup.DELETE("/:id", r.foodTypeHandler.DeleteFoodType)
	}

	foodsGroup := apiV1.Group("/foods")
	{
		foodsGroup.POST("", r.foodHandler.CreateFood)
		foodsGroup.GET("", r.foodHandler.ListFoods)
		foodsGroup.GET("/:id", r.foodHandler.GetFood)
		foodsGroup.PUT("/:id", r.foodHandler.UpdateFood)
		foodsGroup.DELETE("/:id", r.foodHandler.DeleteFood)
	}

	consumptionsGroup := apiV1.Group("/food-consumptions")
	{
		consumptionsGroup.POST("", r.foodConsumptionHandler.CreateFoodConsumption)
		consumptionsGroup.GET("", r.foodConsumptionHandler.ListFoodConsumptions)
		consumptionsGroup.GET("/:id", r.foodConsumptionHandler.GetFoodConsumption)
		consumptionsGroup.PUT("/:id", r.foodConsumptionHandler.UpdateFoodConsumption)
		consumptionsGroup.DELETE("/:id", r.foodConsumptionHandler.DeleteFoodConsumption)
	}

	dailyIntakesGroup := apiV1.Group("/daily-intakes")
	{
		dailyIntakesGroup.GET("", r.dailyIntakeHandler.GetDailyIntake)
		dailyIntakesGroup.GET("/range", r.dailyIntakeHandler.ListDailyIntakes)
	}
}
