package usecase

import (
	"context"

	"phecalc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateFoodInput defines a new food owned by the caller.
type CreateFoodInput struct {
	FoodTypeID uuid.UUID
	Name       string
	Protein    decimal.Decimal
	Calories   decimal.Decimal
}

// UpdateFoodInput holds the food fields to change. Nil fields are left untouched.
type UpdateFoodInput struct {
	FoodTypeID *uuid.UUID
	Name       *string
	Protein    *decimal.Decimal
	Calories   *decimal.Decimal
}

// FoodUsecase manages the caller's foods. Foods owned by other users are reported as not found.
type FoodUsecase interface {
	CreateFood(ctx context.Context, userID uuid.UUID, input *CreateFoodInput) (*entity.Food, error)
	GetFood(ctx context.Context, userID, foodID uuid.UUID) (*entity.Food, error)
	ListFoods(ctx context.Context, userID uuid.UUID) ([]*entity.Food, error)
	UpdateFood(ctx context.Context, userID, foodID uuid.UUID, input *UpdateFoodInput) (*entity.Food, error)
	DeleteFood(ctx context.Context, userID, foodID uuid.UUID) error
}
