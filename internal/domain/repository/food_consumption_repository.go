package repository

import (
	"context"
	"time"

	"phecalc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFoodConsumptionNotFound is returned when a consumption event is not found.
var ErrFoodConsumptionNotFound = errors.New("food consumption not found")

// FoodConsumptionRepository defines persistence operations for consumption events.
type FoodConsumptionRepository interface {
	// Create persists a new consumption event.
	Create(ctx context.Context, consumption *entity.FoodConsumption) error

	// FindByID retrieves a consumption event by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodConsumption, error)

	// FindByUserAndDate lists the events booked to the user's local date, oldest first.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.FoodConsumption, error)

	// Update stores the event's amount and contribution.
	Update(ctx context.Context, consumption *entity.FoodConsumption) error

	// Delete removes a consumption event by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
