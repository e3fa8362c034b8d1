package impl

import (
	"context"
	"fmt"
	"time"

	"phecalc/internal/domain/entity"
	domainerrors "phecalc/internal/domain/errors"
	"phecalc/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// intakeAggregator is the only writer of daily totals. It works on the repository of
// the caller's transaction, so its write commits or rolls back with the caller's work.
type intakeAggregator struct {
	repo repository.DailyIntakeRepository
}

func newIntakeAggregator(repo repository.DailyIntakeRepository) *intakeAggregator {
	return &intakeAggregator{repo: repo}
}

// applyDelta adds delta to the total of userID on date and returns the stored total.
// A missing total starts at zero. A result below zero is rejected with
// ErrDailyIntakeBelowZero and nothing is written.
func (a *intakeAggregator) applyDelta(ctx context.Context, userID uuid.UUID, date time.Time, delta decimal.Decimal) (*entity.DailyIntake, error) {
	day := entity.CalendarDate(date)

	current, err := a.repo.FindByUserAndDateForUpdate(ctx, userID, day)
	switch {
	case errors.Is(err, repository.ErrDailyIntakeNotFound):
		current = entity.NewDailyIntake(userID, day)
	case err != nil:
		return nil, errors.Wrap(err, "failed to lock daily intake")
	}

	newTotal := current.TotalPhenylalanine.Add(delta)
	if newTotal.IsNegative() {
		details := fmt.Sprintf("date %s: total %s, delta %s", day.Format(entity.DateLayout), current.TotalPhenylalanine, delta)

		return nil, errors.WithStack(domainerrors.ErrDailyIntakeBelowZero.WithDetails(details))
	}

	updated := *current
	updated.TotalPhenylalanine = newTotal

	if current.IsNew() {
		if err := a.repo.Create(ctx, &updated); err != nil {
			return nil, translateRepoError(err, "failed to create daily intake")
		}

		return &updated, nil
	}

	if err := a.repo.UpdateTotal(ctx, &updated); err != nil {
		return nil, translateRepoError(err, "failed to update daily intake")
	}

	return &updated, nil
}

// findByDate reads the total of userID on date. It never creates one.
func (a *intakeAggregator) findByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyIntake, error) {
	intake, err := a.repo.FindByUserAndDate(ctx, userID, entity.CalendarDate(date))
	if err != nil {
		return nil, translateRepoError(err, "failed to find daily intake")
	}

	return intake, nil
}
