package postgres

import (
	"testing"

	"phecalc/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_CRUD(t *testing.T) {
	tx := beginTestTx(t, openTestDB(t))
	ctx := t.Context()
	user := seedUser(t, tx)
	repo := NewUserRepository(tx)

	exists, err := repo.ExistsByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "missing@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	limit := decimal.NewFromInt(300)
	user.DailyLimit = &limit
	user.Timezone = "Not/AZone"
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByUsername(ctx, user.Username)
	require.NoError(t, err)
	require.NotNil(t, found.DailyLimit)
	assert.True(t, limit.Equal(*found.DailyLimit))
	assert.Equal(t, "UTC", found.Timezone)

	duplicate := *user
	duplicate.ID = [16]byte{}
	duplicate.Email = "other@example.com"
	err = tx.Transaction(func(inner *gorm.DB) error {
		return NewUserRepository(inner).Create(ctx, &duplicate)
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
