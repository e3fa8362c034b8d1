package usecase

import (
	"context"

	"phecalc/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateFoodTypeInput defines a new food type.
type CreateFoodTypeInput struct {
	Name       string
	Multiplier int
}

// UpdateFoodTypeInput holds the food type fields to change. Nil fields are left untouched.
type UpdateFoodTypeInput struct {
	Name       *string
	Multiplier *int
}

// FoodTypeUsecase manages the shared food type catalogue.
type FoodTypeUsecase interface {
	CreateFoodType(ctx context.Context, input *CreateFoodTypeInput) (*entity.FoodType, error)
	GetFoodType(ctx context.Context, id uuid.UUID) (*entity.FoodType, error)
	ListFoodTypes(ctx context.Context) ([]*entity.FoodType, error)
	UpdateFoodType(ctx context.Context, id uuid.UUID, input *UpdateFoodTypeInput) (*entity.FoodType, error)
	DeleteFoodType(ctx context.Context, id uuid.UUID) error
}
