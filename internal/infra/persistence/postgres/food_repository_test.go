package postgres

import (
	"testing"

	"phecalc/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFoodRepository_CRUD(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))
	ctx := t.Context()
	user := seedUser(t, tx)
	food := seedFood(t, tx, user.ID)
	repo := NewFoodRepository(tx)

	found, err := repo.FindByID(ctx, food.ID)
	require.NoError(t, err)
	require.NotNil(t, found.FoodType)
	assert.Equal(t, 50, found.FoodType.Multiplier)
	assert.True(t, decimal.NewFromInt(2000).Equal(found.Phenylalanine))

	foods, err := repo.FindByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, foods, 1)

	found.Name = "Brown rice"
	require.NoError(t, repo.Update(ctx, found))

	// Food types in use cannot be removed.
	err = tx.Transaction(func(inner *gorm.DB) error {
		return NewFoodTypeRepository(inner).Delete(ctx, food.FoodTypeID)
	})
	assert.ErrorIs(t, err, repository.ErrFoodTypeInUse)

	require.NoError(t, repo.Delete(ctx, food.ID))
	_, err = repo.FindByID(ctx, food.ID)
	assert.ErrorIs(t, err, repository.ErrFoodNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), repository.ErrFoodNotFound)
}
