package impl

import (
	"context"
	"testing"
	"time"

	"phecalc/config"
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

type dailyIntakeServiceFixtures struct {
	service         *dailyIntakeService
	txManager       *mockRepo.MockTransactionManager
	dailyIntakeRepo *mockRepo.MockDailyIntakeRepository
	userRepo        *mockRepo.MockUserRepository
}

func createTestDailyIntakeService(t *testing.T) dailyIntakeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	dailyIntakeRepo := mockRepo.NewMockDailyIntakeRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewDailyIntakeService(DailyIntakeServiceParams{
		TxManager:       txManager,
		DailyIntakeRepo: dailyIntakeRepo,
		UserRepo:        userRepo,
		Config:          &config.Config{Intake: &config.IntakeConfig{MaxRangeDays: 31}},
		Logger:          newDiscardLogger(),
	}).(*dailyIntakeService)

	return dailyIntakeServiceFixtures{
		service:         service,
		txManager:       txManager,
		dailyIntakeRepo: dailyIntakeRepo,
		userRepo:        userRepo,
	}
}

func TestDailyIntakeService_ApplyDelta_RunsInTransaction(t *testing.T) {
	fx := createTestDailyIntakeService(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	txIntakeRepo := mockRepo.NewMockDailyIntakeRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDailyIntakeRepository().Return(txIntakeRepo)
	expectTx(fx.txManager, factory)

	existing := &entity.DailyIntake{ID: uuid.New(), UserID: userID, Date: day, TotalPhenylalanine: dec("2.5")}
	txIntakeRepo.EXPECT().FindByUserAndDateForUpdate(ctx, userID, day).Return(existing, nil)
	txIntakeRepo.EXPECT().
		UpdateTotal(ctx, mock.MatchedBy(func(d *entity.DailyIntake) bool {
			return d.ID == existing.ID && d.TotalPhenylalanine.Equal(dec("3.75"))
		})).
		Return(nil)

	intake, err := fx.service.ApplyDelta(ctx, userID, day.Add(20*time.Hour), dec("1.25"))

	require.NoError(t, err)
	assert.Equal(t, "3.75", intake.TotalPhenylalanine.String())
}

func TestDailyIntakeService_GetSummary(t *testing.T) {
	fx := createTestDailyIntakeService(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	limit := dec("300")

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, DailyLimit: &limit}, nil)
	fx.dailyIntakeRepo.EXPECT().FindByUserAndDate(ctx, userID, day).
		Return(&entity.DailyIntake{UserID: userID, Date: day, TotalPhenylalanine: dec("120.5")}, nil)

	summary, err := fx.service.GetSummary(ctx, userID, day)

	require.NoError(t, err)
	assert.Equal(t, "120.5", summary.TotalPhenylalanine.String())
	require.NotNil(t, summary.Remaining)
	assert.Equal(t, "179.5", summary.Remaining.String())
	assert.False(t, summary.Exceeded)
}

func TestDailyIntakeService_GetSummary_MissingDay(t *testing.T) {
	fx := createTestDailyIntakeService(t)
	ctx := context.Background()
	userID := uuid.New()
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	fx.dailyIntakeRepo.EXPECT().FindByUserAndDate(ctx, userID, day).Return(nil, repository.ErrDailyIntakeNotFound)

	_, err := fx.service.GetSummary(ctx, userID, day)

	assert.True(t, errors.Is(err, domainerrors.ErrDailyIntakeNotFound))
}

func TestDailyIntakeService_ListRange(t *testing.T) {
	fx := createTestDailyIntakeService(t)
	ctx := context.Background()
	userID := uuid.New()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	stored := []*entity.DailyIntake{{UserID: userID, Date: from, TotalPhenylalanine: dec("4")}}
	fx.dailyIntakeRepo.EXPECT().FindByUserBetween(ctx, userID, from, to).Return(stored, nil)

	intakes, err := fx.service.ListRange(ctx, userID, from, to)

	require.NoError(t, err)
	assert.Equal(t, stored, intakes)
}

func TestDailyIntakeService_ListRange_Invalid(t *testing.T) {
	fx := createTestDailyIntakeService(t)
	ctx := context.Background()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		to   time.Time
	}{
		{name: "to before from", to: from.AddDate(0, 0, -1)},
		{name: "range too long", to: from.AddDate(0, 0, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.ListRange(ctx, uuid.New(), from, tt.to)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}
