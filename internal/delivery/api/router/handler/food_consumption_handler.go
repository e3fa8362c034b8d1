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

// FoodConsumptionHandlerParams holds dependencies for FoodConsumptionHandler, injected by Fx.
type FoodConsumptionHandlerParams struct {
	fx.In

	ConsumptionUC usecase.FoodConsumptionUsecase
	Logger        *slog.Logger
}

// FoodConsumptionHandler serves the caller's consumption log
type FoodConsumptionHandler struct {
	consumptionUC usecase.FoodConsumptionUsecase
	logger        *slog.Logger
}

// NewFoodConsumptionHandler is the constructor for FoodConsumptionHandler
func NewFoodConsumptionHandler(params FoodConsumptionHandlerParams) *FoodConsumptionHandler {
	return &FoodConsumptionHandler{
		consumptionUC: params.ConsumptionUC,
		logger:        params.Logger,
	}
}

// CreateFoodConsumptionRequest represents the request body for logging a consumption
type CreateFoodConsumptionRequest struct {
	FoodID uuid.UUID       `json:"food_id" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

// UpdateFoodConsumptionRequest represents the request body for changing a consumed amount
type UpdateFoodConsumptionRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

// CreateFoodConsumption logs a consumption against today's total
func (h *FoodConsumptionHandler) CreateFoodConsumption(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateFoodConsumptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	consumption, err := h.consumptionUC.CreateFoodConsumption(c.Request().Context(), userID, req.FoodID, req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toFoodConsumptionResponse(consumption))
}

// GetFoodConsumption returns one consumption
func (h *FoodConsumptionHandler) GetFoodConsumption(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	consumptionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	consumption, err := h.consumptionUC.GetFoodConsumption(c.Request().Context(), userID, consumptionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFoodConsumptionResponse(consumption))
}

// ListFoodConsumptions returns the consumptions booked to ?date=
func (h *FoodConsumptionHandler) ListFoodConsumptions(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	date, err := parseDateQuery(c, "date")
	if err != nil {
		return err
	}

	consumptions, err := h.consumptionUC.ListFoodConsumptions(c.Request().Context(), userID, date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFoodConsumptionResponses(consumptions))
}

// UpdateFoodConsumption changes the consumed amount
func (h *FoodConsumptionHandler) UpdateFoodConsumption(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	consumptionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateFoodConsumptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	consumption, err := h.consumptionUC.UpdateFoodConsumption(c.Request().Context(), userID, consumptionID, req.Amount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFoodConsumptionResponse(consumption))
}

// DeleteFoodConsumption removes a consumption and its contribution
func (h *FoodConsumptionHandler) DeleteFoodConsumption(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	consumptionID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.consumptionUC.DeleteFoodConsumption(c.Request().Context(), userID, consumptionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
