package handler

import (
	"log/slog"
	"net/http"

	"phecalc/internal/delivery/api/response"
	"phecalc/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FoodTypeHandlerParams holds dependencies for FoodTypeHandler, injected by Fx.
type FoodTypeHandlerParams struct {
	fx.In

	FoodTypeUC usecase.FoodTypeUsecase
	Logger     *slog.Logger
}

// FoodTypeHandler serves the shared food type catalogue
type FoodTypeHandler struct {
	foodTypeUC usecase.FoodTypeUsecase
	logger     *slog.Logger
}

// NewFoodTypeHandler is the constructor for FoodTypeHandler
func NewFoodTypeHandler(params FoodTypeHandlerParams) *FoodTypeHandler {
	return &FoodTypeHandler{
		foodTypeUC: params.FoodTypeUC,
		logger:     params.Logger,
	}
}

// CreateFoodTypeRequest represents the request body for creating a food type
type CreateFoodTypeRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Multiplier int    `json:"multiplier" validate:"required,gt=0"`
}

// UpdateFoodTypeRequest represents the request body for updating a food type
type UpdateFoodTypeRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	Multiplier *int    `json:"multiplier" validate:"omitempty,gt=0"`
}

// CreateFoodType handles food type creation
func (h *FoodTypeHandler) CreateFoodType(c echo.Context) error {
	var req CreateFoodTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	foodType, err := h.foodTypeUC.CreateFoodType(c.Request().Context(), &usecase.CreateFoodTypeInput{
		Name:       req.Name,
		Multiplier: req.Multiplier,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, foodType)
}

// GetFoodType returns one food type
func (h *FoodTypeHandler) GetFoodType(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	foodType, err := h.foodTypeUC.GetFoodType(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, foodType)
}

// ListFoodTypes returns the whole catalogue
func (h *FoodTypeHandler) ListFoodTypes(c echo.Context) error {
	foodTypes, err := h.foodTypeUC.ListFoodTypes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, foodTypes)
}

// UpdateFoodType handles partial food type updates
func (h *FoodTypeHandler) UpdateFoodType(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFoodTypeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	foodType, err := h.foodTypeUC.UpdateFoodType(c.Request().Context(), id, &usecase.UpdateFoodTypeInput{
		Name:       req.Name,
		Multiplier: req.Multiplier,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, foodType)
}

// DeleteFoodType removes a food type no food refers to
func (h *FoodTypeHandler) DeleteFoodType(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.foodTypeUC.DeleteFoodType(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
