package usecase

import (
	"context"
	"time"

	"phecalc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyIntakeUsecase exposes the per-day phenylalanine totals.
type DailyIntakeUsecase interface {
	// ApplyDelta adjusts a day's total in its own transaction, creating it on first use.
	ApplyDelta(ctx context.Context, userID uuid.UUID, date time.Time, delta decimal.Decimal) (*entity.DailyIntake, error)

	// FindByDate returns the stored total, failing when nothing was recorded for the day.
	FindByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyIntake, error)

	// GetSummary returns the day's total measured against the user's daily limit.
	GetSummary(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyIntakeSummary, error)

	// ListRange returns the stored totals between from and to inclusive.
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.DailyIntake, error)
}
