package postgres

import (
	"context"
	"os"
	"sync"
	"testing"

	"phecalc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	testDBOnce sync.Once
	testDB     *gorm.DB
	testDBErr  error
)

// openTestDB connects to TEST_POSTGRES_DSN once and migrates the schema.
// Tests are skipped when the variable is unset.
func openTestDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	testDBOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			testDBErr = errMissingDSN
			return
		}

		db, err := gorm.Open(pgDriver.Open(dsn), &gorm.Config{
			SkipDefaultTransaction: true,
			Logger:                 gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if err != nil {
			testDBErr = err
			return
		}

		if err := AutoMigrate(context.Background(), db); err != nil {
			testDBErr = err
			return
		}

		testDB = db
	})

	if errors.Is(testDBErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run repository integration tests")
	}
	require.NoError(tb, testDBErr, "failed to init test db")

	return testDB
}

// beginTestTx opens a transaction that is rolled back when the test ends.
func beginTestTx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()

	tx := db.Begin()
	require.NoError(tb, tx.Error)
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})

	return tx
}

func seedUser(tb testing.TB, db *gorm.DB) *entity.User {
	tb.Helper()

	suffix := uuid.NewString()[:8]
	user := &entity.User{
		Username:     "user_" + suffix,
		Email:        "user_" + suffix + "@example.com",
		PasswordHash: "hash",
		Timezone:     "Europe/Berlin",
		Role:         entity.RoleUser,
	}
	require.NoError(tb, NewUserRepository(db).Create(tb.Context(), user))

	return user
}

func seedFood(tb testing.TB, db *gorm.DB, userID uuid.UUID) *entity.Food {
	tb.Helper()

	foodType := &entity.FoodType{Name: "Grain", Multiplier: 50}
	require.NoError(tb, NewFoodTypeRepository(db).Create(tb.Context(), foodType))

	food := &entity.Food{
		UserID:   userID,
		Name:     "Rice",
		Protein:  decimal.NewFromInt(4),
		Calories: decimal.NewFromInt(130),
	}
	food.ApplyFoodType(foodType)
	require.NoError(tb, NewFoodRepository(db).Create(tb.Context(), food))

	return food
}
