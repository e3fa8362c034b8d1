package repository

import (
	"context"

	"phecalc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for food type persistence.
var (
	// ErrFoodTypeNotFound is returned when a food type is not found.
	ErrFoodTypeNotFound = errors.New("food type not found")
	// ErrFoodTypeInUse is returned when deleting a food type that foods still reference.
	ErrFoodTypeInUse = errors.New("food type in use")
)

// FoodTypeRepository defines persistence operations for the shared food type catalogue.
type FoodTypeRepository interface {
	Create(ctx context.Context, foodType *entity.FoodType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodType, error)
	FindAll(ctx context.Context) ([]*entity.FoodType, error)
	Update(ctx context.Context, foodType *entity.FoodType) error
	Delete(ctx context.Context, id uuid.UUID) error
}
