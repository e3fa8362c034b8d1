package repository

import (
	"context"
	"time"

	"phecalc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for daily intake persistence.
var (
	// ErrDailyIntakeNotFound is returned when no total exists for a user and date.
	ErrDailyIntakeNotFound = errors.New("daily intake not found")
	// ErrNegativeDailyIntake is returned when the storage rejects a negative total.
	ErrNegativeDailyIntake = errors.New("daily intake total is negative")
)

// DailyIntakeRepository defines persistence operations for per-day totals.
// Only the intake aggregator writes through it.
type DailyIntakeRepository interface {
	// FindByUserAndDate reads the total without locking.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyIntake, error)

	// FindByUserAndDateForUpdate reads the total and holds a row lock until the transaction ends.
	FindByUserAndDateForUpdate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyIntake, error)

	// FindByUserBetween lists the stored totals in [from, to] ordered by date.
	FindByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.DailyIntake, error)

	// Create inserts the total. If a row for the same user and date was inserted concurrently,
	// the new total is added to it instead. intake is refreshed with the stored row.
	Create(ctx context.Context, intake *entity.DailyIntake) error

	// UpdateTotal overwrites the total of the existing row intake.ID with intake's total
	// and refreshes intake.UpdatedAt with the stored timestamp.
	UpdateTotal(ctx context.Context, intake *entity.DailyIntake) error
}
