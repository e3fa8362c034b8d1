package repository

import (
	"context"

	"phecalc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for food persistence.
var (
	// ErrFoodNotFound is returned when a food is not found.
	ErrFoodNotFound = errors.New("food not found")
	// ErrFoodInUse is returned when deleting a food that consumptions still reference.
	ErrFoodInUse = errors.New("food in use")
)

// FoodRepository defines persistence operations for user-owned foods.
type FoodRepository interface {
	// Create persists a new food.
	Create(ctx context.Context, food *entity.Food) error

	// FindByID retrieves a food with its food type loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)

	// FindByUser lists the foods owned by userID ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Food, error)

	// Update modifies an existing food.
	Update(ctx context.Context, food *entity.Food) error

	// Delete removes a food by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
