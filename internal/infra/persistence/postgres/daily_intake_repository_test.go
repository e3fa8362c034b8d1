package postgres

import (
	"testing"
	"time"

	"phecalc/internal/domain/entity"
	"phecalc/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDailyIntakeRepository_CreateFindUpdate(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))
	ctx := t.Context()
	user := seedUser(t, tx)
	repo := NewDailyIntakeRepository(tx)
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := repo.FindByUserAndDate(ctx, user.ID, date)
	assert.ErrorIs(t, err, repository.ErrDailyIntakeNotFound)

	intake := entity.NewDailyIntake(user.ID, date)
	intake.TotalPhenylalanine = decimal.RequireFromString("10.0000")
	require.NoError(t, repo.Create(ctx, intake))
	assert.NotEqual(t, uuid.Nil, intake.ID)

	locked, err := repo.FindByUserAndDateForUpdate(ctx, user.ID, date)
	require.NoError(t, err)
	assert.Equal(t, intake.ID, locked.ID)
	assert.Equal(t, date, locked.Date)
	assert.True(t, decimal.NewFromInt(10).Equal(locked.TotalPhenylalanine))

	createdAt := intake.UpdatedAt
	intake.TotalPhenylalanine = decimal.RequireFromString("4.5")
	require.NoError(t, repo.UpdateTotal(ctx, intake))
	assert.False(t, intake.UpdatedAt.Before(createdAt))
	found, err := repo.FindByUserAndDate(ctx, user.ID, date)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("4.5").Equal(found.TotalPhenylalanine))
	assert.WithinDuration(t, intake.UpdatedAt, found.UpdatedAt, time.Millisecond)

	missing := &entity.DailyIntake{ID: uuid.New(), TotalPhenylalanine: decimal.Zero}
	assert.ErrorIs(t, repo.UpdateTotal(ctx, missing), repository.ErrDailyIntakeNotFound)
}

func TestDailyIntakeRepository_CreateMergesOnConflict(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))
	ctx := t.Context()
	user := seedUser(t, tx)
	repo := NewDailyIntakeRepository(tx)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	first := entity.NewDailyIntake(user.ID, date)
	first.TotalPhenylalanine = decimal.NewFromInt(7)
	require.NoError(t, repo.Create(ctx, first))

	second := entity.NewDailyIntake(user.ID, date)
	second.TotalPhenylalanine = decimal.NewFromInt(3)
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, decimal.NewFromInt(10).Equal(second.TotalPhenylalanine))
}

func TestDailyIntakeRepository_RejectsNegativeTotal(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))
	ctx := t.Context()
	user := seedUser(t, tx)
	date := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	intake := entity.NewDailyIntake(user.ID, date)
	intake.TotalPhenylalanine = decimal.NewFromInt(1)
	require.NoError(t, NewDailyIntakeRepository(tx).Create(ctx, intake))

	// Savepoint so the failed statement does not abort the outer transaction.
	err := tx.Transaction(func(inner *gorm.DB) error {
		negative := *intake
		negative.TotalPhenylalanine = decimal.NewFromInt(-1)

		return NewDailyIntakeRepository(inner).UpdateTotal(ctx, &negative)
	})
	assert.ErrorIs(t, err, repository.ErrNegativeDailyIntake)

	found, err := NewDailyIntakeRepository(tx).FindByUserAndDate(ctx, user.ID, date)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(found.TotalPhenylalanine))
}

func TestDailyIntakeRepository_FindByUserBetween(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))
	ctx := t.Context()
	user := seedUser(t, tx)
	repo := NewDailyIntakeRepository(tx)

	for day := 1; day <= 5; day++ {
		intake := entity.NewDailyIntake(user.ID, time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC))
		intake.TotalPhenylalanine = decimal.NewFromInt(int64(day))
		require.NoError(t, repo.Create(ctx, intake))
	}

	intakes, err := repo.FindByUserBetween(ctx, user.ID,
		time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, intakes, 3)
	assert.Equal(t, 2, intakes[0].Date.Day())
	assert.Equal(t, 4, intakes[2].Date.Day())
}

func TestDailyIntakeRepository_CascadesWithUser(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))
	ctx := t.Context()
	user := seedUser(t, tx)
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	intake := entity.NewDailyIntake(user.ID, date)
	require.NoError(t, NewDailyIntakeRepository(tx).Create(ctx, intake))
	require.NoError(t, NewUserRepository(tx).Delete(ctx, user.ID))

	_, err := NewDailyIntakeRepository(tx).FindByUserAndDate(ctx, user.ID, date)
	assert.ErrorIs(t, err, repository.ErrDailyIntakeNotFound)
}
