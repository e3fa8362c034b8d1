package postgres

import (
	"testing"
	"time"

	"phecalc/internal/domain/entity"
	"phecalc/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFoodConsumptionRepository_Lifecycle(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))
	ctx := t.Context()
	user := seedUser(t, tx)
	food := seedFood(t, tx, user.ID)
	repo := NewFoodConsumptionRepository(tx)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	consumption := &entity.FoodConsumption{
		UserID:              user.ID,
		FoodID:              food.ID,
		Amount:              decimal.NewFromInt(50),
		PhenylalanineAmount: food.ContributionFor(decimal.NewFromInt(50)),
		ConsumedAt:          time.Date(2024, 5, 31, 22, 30, 0, 0, time.UTC),
		IntakeDate:          date,
	}
	require.NoError(t, repo.Create(ctx, consumption))

	found, err := repo.FindByID(ctx, consumption.ID)
	require.NoError(t, err)
	assert.Equal(t, date, found.IntakeDate)
	assert.True(t, decimal.NewFromInt(100).Equal(found.PhenylalanineAmount))

	listed, err := repo.FindByUserAndDate(ctx, user.ID, date)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	consumption.Amount = decimal.NewFromInt(25)
	consumption.PhenylalanineAmount = decimal.NewFromInt(5)
	require.NoError(t, repo.Update(ctx, consumption))

	found, err = repo.FindByID(ctx, consumption.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(found.PhenylalanineAmount))

	// Foods with recorded consumptions cannot be removed.
	err = tx.Transaction(func(inner *gorm.DB) error {
		return NewFoodRepository(inner).Delete(ctx, food.ID)
	})
	assert.ErrorIs(t, err, repository.ErrFoodInUse)

	require.NoError(t, repo.Delete(ctx, consumption.ID))
	_, err = repo.FindByID(ctx, consumption.ID)
	assert.ErrorIs(t, err, repository.ErrFoodConsumptionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, consumption.ID), repository.ErrFoodConsumptionNotFound)
}
