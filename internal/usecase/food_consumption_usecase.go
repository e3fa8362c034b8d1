package usecase

import (
	"context"
	"time"

	"phecalc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FoodConsumptionUsecase records eating events and keeps the daily totals in step with them.
// Each write runs in one transaction together with its daily total adjustment.
type FoodConsumptionUsecase interface {
	// CreateFoodConsumption logs amount of an owned food as eaten now.
	CreateFoodConsumption(ctx context.Context, userID, foodID uuid.UUID, amount decimal.Decimal) (*entity.FoodConsumption, error)

	// UpdateFoodConsumption changes the amount of an event and moves the day's total by the difference.
	UpdateFoodConsumption(ctx context.Context, userID, consumptionID uuid.UUID, amount decimal.Decimal) (*entity.FoodConsumption, error)

	// DeleteFoodConsumption removes an event and its contribution from the day's total.
	DeleteFoodConsumption(ctx context.Context, userID, consumptionID uuid.UUID) error

	GetFoodConsumption(ctx context.Context, userID, consumptionID uuid.UUID) (*entity.FoodConsumption, error)
	ListFoodConsumptions(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.FoodConsumption, error)
}
