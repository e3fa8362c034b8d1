package handler

import (
	"log/slog"
	"net/http"

	"phecalc/internal/delivery/api/response"
	"phecalc/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// FoodHandlerParams holds dependencies for FoodHandler, injected by Fx.
type FoodHandlerParams struct {
	fx.In

	FoodUC usecase.FoodUsecase
	Logger *slog.Logger
}

// FoodHandler serves the caller's foods
type FoodHandler struct {
	foodUC usecase.FoodUsecase
	logger *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler
func NewFoodHandler(params FoodHandlerParams) *FoodHandler {
	return &FoodHandler{
		foodUC: params.FoodUC,
		logger: params.Logger,
	}
}

// CreateFoodRequest represents the request body for creating a food
type CreateFoodRequest struct {
	FoodTypeID uuid.UUID       `json:"food_type_id" validate:"required"`
	Name       string          `json:"name" validate:"required,max=200"`
	Protein    decimal.Decimal `json:"protein" validate:"gte=0"`
	Calories   decimal.Decimal `json:"calories" validate:"gte=0"`
}

// UpdateFoodRequest represents the request body for updating a food
type UpdateFoodRequest struct {
	FoodTypeID *uuid.UUID       `json:"food_type_id"`
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Protein    *decimal.Decimal `json:"protein" validate:"omitempty,gte=0"`
	Calories   *decimal.Decimal `json:"calories" validate:"omitempty,gte=0"`
}

// CreateFood handles food creation
func (h *FoodHandler) CreateFood(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateFoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	food, err := h.foodUC.CreateFood(c.Request().Context(), userID, &usecase.CreateFoodInput{
		FoodTypeID: req.FoodTypeID,
		Name:       req.Name,
		Protein:    req.Protein,
		Calories:   req.Calories,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, food)
}

// GetFood returns one of the caller's foods
func (h *FoodHandler) GetFood(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	foodID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	food, err := h.foodUC.GetFood(c.Request().Context(), userID, foodID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, food)
}

// ListFoods returns the caller's foods
func (h *FoodHandler) ListFoods(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	foods, err := h.foodUC.ListFoods(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, foods)
}

// UpdateFood handles partial food updates
func (h *FoodHandler) UpdateFood(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	foodID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	food, err := h.foodUC.UpdateFood(c.Request().Context(), userID, foodID, &usecase.UpdateFoodInput{
		FoodTypeID: req.FoodTypeID,
		Name:       req.Name,
		Protein:    req.Protein,
		Calories:   req.Calories,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, food)
}

// DeleteFood removes a food no consumption refers to
func (h *FoodHandler) DeleteFood(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	foodID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.foodUC.DeleteFood(c.Request().Context(), userID, foodID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
