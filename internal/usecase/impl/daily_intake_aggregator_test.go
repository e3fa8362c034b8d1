package impl

import (
	"context"
	"testing"
	"time"

	"phecalc/internal/domain/entity"
	domainerrors "phecalc/internal/domain/errors"
	"phecalc/internal/domain/repository"
	mockRepo "phecalc/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIntakeAggregator_ApplyDelta_CreatesMissingTotal(t *testing.T) {
	repo := mockRepo.NewMockDailyIntakeRepository(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().FindByUserAndDateForUpdate(ctx, userID, day).Return(nil, repository.ErrDailyIntakeNotFound)
	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(intake *entity.DailyIntake) bool {
			return intake.UserID == userID && intake.Date.Equal(day) && intake.TotalPhenylalanine.Equal(dec("10"))
		})).
		Run(func(_ context.Context, intake *entity.DailyIntake) {
			intake.ID = uuid.New()
		}).
		Return(nil)

	intake, err := newIntakeAggregator(repo).applyDelta(ctx, userID, day, dec("10"))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, intake.ID)
	assert.True(t, dec("10").Equal(intake.TotalPhenylalanine))
}

func TestIntakeAggregator_ApplyDelta_UpdatesExistingTotal(t *testing.T) {
	repo := mockRepo.NewMockDailyIntakeRepository(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	existing := &entity.DailyIntake{ID: uuid.New(), UserID: userID, Date: day, TotalPhenylalanine: dec("10")}

	repo.EXPECT().FindByUserAndDateForUpdate(ctx, userID, day).Return(existing, nil)
	storedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.EXPECT().
		UpdateTotal(ctx, mock.MatchedBy(func(d *entity.DailyIntake) bool {
			return d.ID == existing.ID && d.TotalPhenylalanine.Equal(dec("5"))
		})).
		Run(func(_ context.Context, d *entity.DailyIntake) { d.UpdatedAt = storedAt }).
		Return(nil)

	intake, err := newIntakeAggregator(repo).applyDelta(ctx, userID, day, dec("-5"))

	require.NoError(t, err)
	assert.True(t, dec("5").Equal(intake.TotalPhenylalanine))
	assert.Equal(t, storedAt, intake.UpdatedAt)
	assert.True(t, dec("10").Equal(existing.TotalPhenylalanine), "the loaded value is not mutated")
}

func TestIntakeAggregator_ApplyDelta_ZeroDeltaOnMissingDayCreatesZeroTotal(t *testing.T) {
	repo := mockRepo.NewMockDailyIntakeRepository(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().FindByUserAndDateForUpdate(ctx, userID, day).Return(nil, repository.ErrDailyIntakeNotFound)
	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(intake *entity.DailyIntake) bool { return intake.TotalPhenylalanine.IsZero() })).
		Return(nil)

	intake, err := newIntakeAggregator(repo).applyDelta(ctx, userID, day, dec("0"))

	require.NoError(t, err)
	assert.True(t, intake.TotalPhenylalanine.IsZero())
}

func TestIntakeAggregator_ApplyDelta_RejectsNegativeWithoutWriting(t *testing.T) {
	tests := []struct {
		name     string
		existing *entity.DailyIntake
		delta    string
	}{
		{name: "existing total", existing: &entity.DailyIntake{ID: uuid.New(), TotalPhenylalanine: dec("10")}, delta: "-20"},
		{name: "missing total", existing: nil, delta: "-0.0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockDailyIntakeRepository(t)
			ctx := context.Background()
			userID := uuid.New()
			day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

			if tt.existing != nil {
				repo.EXPECT().FindByUserAndDateForUpdate(ctx, userID, day).Return(tt.existing, nil)
			} else {
				repo.EXPECT().FindByUserAndDateForUpdate(ctx, userID, day).Return(nil, repository.ErrDailyIntakeNotFound)
			}

			intake, err := newIntakeAggregator(repo).applyDelta(ctx, userID, day, dec(tt.delta))

			require.Error(t, err)
			assert.Nil(t, intake)
			assert.True(t, errors.Is(err, domainerrors.ErrDailyIntakeBelowZero))
		})
	}
}

func TestIntakeAggregator_ApplyDelta_MapsStorageConstraint(t *testing.T) {
	repo := mockRepo.NewMockDailyIntakeRepository(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().FindByUserAndDateForUpdate(ctx, userID, day).Return(nil, repository.ErrDailyIntakeNotFound)
	repo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrNegativeDailyIntake)

	_, err := newIntakeAggregator(repo).applyDelta(ctx, userID, day, dec("1"))

	assert.True(t, errors.Is(err, domainerrors.ErrDailyIntakeBelowZero))
}

func TestIntakeAggregator_ApplyDelta_LockFailure(t *testing.T) {
	repo := mockRepo.NewMockDailyIntakeRepository(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	dbErr := errors.New("connection reset")

	repo.EXPECT().FindByUserAndDateForUpdate(ctx, userID, day).Return(nil, dbErr)

	_, err := newIntakeAggregator(repo).applyDelta(ctx, userID, day, dec("1"))

	assert.ErrorIs(t, err, dbErr)
}

func TestIntakeAggregator_FindByDate(t *testing.T) {
	repo := mockRepo.NewMockDailyIntakeRepository(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().FindByUserAndDate(ctx, userID, day).Return(nil, repository.ErrDailyIntakeNotFound)

	_, err := newIntakeAggregator(repo).findByDate(ctx, userID, day.Add(13*time.Hour))

	assert.True(t, errors.Is(err, domainerrors.ErrDailyIntakeNotFound))
}
