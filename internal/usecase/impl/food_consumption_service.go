package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "phecalc/internal/delivery/context"
	"phecalc/internal/domain/entity"
	domainerrors "phecalc/internal/domain/errors"
	"phecalc/internal/domain/repository"
	"phecalc/internal/domain/service"
	"phecalc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type foodConsumptionService struct {
	txManager       repository.TransactionManager
	consumptionRepo repository.FoodConsumptionRepository
	publisher       service.EventPublisher
	now             func() time.Time
	logger          *slog.Logger
}

// FoodConsumptionServiceParams holds dependencies for FoodConsumptionService, injected by Fx.
type FoodConsumptionServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ConsumptionRepo repository.FoodConsumptionRepository
	Publisher       service.EventPublisher
	Logger          *slog.Logger
}

// NewFoodConsumptionService creates a new food consumption service.
func NewFoodConsumptionService(params FoodConsumptionServiceParams) usecase.FoodConsumptionUsecase {
	return &foodConsumptionService{
		txManager:       params.TxManager,
		consumptionRepo: params.ConsumptionRepo,
		publisher:       params.Publisher,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *foodConsumptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// limitCheck carries what is needed after commit to decide on a limit event.
type limitCheck struct {
	user   *entity.User
	intake *entity.DailyIntake
	delta  decimal.Decimal
}

// CreateFoodConsumption books amount of an owned food to the user's current local date.
func (srv *foodConsumptionService) CreateFoodConsumption(ctx context.Context, userID, foodID uuid.UUID, amount decimal.Decimal) (*entity.FoodConsumption, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	var (
		consumption *entity.FoodConsumption
		check       limitCheck
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		food, err := findOwnedFood(ctx, repoFactory.NewFoodRepository(), userID, foodID)
		if err != nil {
			return err
		}

		consumedAt := srv.now().UTC()
		contribution := food.ContributionFor(amount)
		intakeDate := entity.LocalDate(consumedAt, user.Timezone)

		intake, err := newIntakeAggregator(repoFactory.NewDailyIntakeRepository()).applyDelta(ctx, userID, intakeDate, contribution)
		if err != nil {
			return err
		}

		consumption = &entity.FoodConsumption{
			UserID:              userID,
			FoodID:              food.ID,
			Amount:              amount,
			PhenylalanineAmount: contribution,
			ConsumedAt:          consumedAt,
			IntakeDate:          intakeDate,
		}
		if err := repoFactory.NewFoodConsumptionRepository().Create(ctx, consumption); err != nil {
			return translateRepoError(err, "failed to create food consumption")
		}

		check = limitCheck{user: user, intake: intake, delta: contribution}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to record food consumption",
			slog.String("userID", userID.String()),
			slog.String("foodID", foodID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute create food consumption transaction")
	}

	srv.log(ctx).Info("Food consumption recorded",
		slog.String("consumptionID", consumption.ID.String()),
		slog.String("date", consumption.IntakeDate.Format(entity.DateLayout)),
		slog.String("phenylalanine", consumption.PhenylalanineAmount.String()),
	)
	srv.notifyIfLimitExceeded(ctx, check)

	return consumption, nil
}

// UpdateFoodConsumption changes the amount of an event and moves the total of the day
// it was booked to by the difference in contribution.
func (srv *foodConsumptionService) UpdateFoodConsumption(ctx context.Context, userID, consumptionID uuid.UUID, amount decimal.Decimal) (*entity.FoodConsumption, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	var (
		consumption *entity.FoodConsumption
		check       limitCheck
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		consumptionRepo := repoFactory.NewFoodConsumptionRepository()

		existing, err := findOwnedConsumption(ctx, consumptionRepo, userID, consumptionID)
		if err != nil {
			return err
		}

		food, err := repoFactory.NewFoodRepository().FindByID(ctx, existing.FoodID)
		if err != nil {
			return translateRepoError(err, "failed to find consumed food")
		}

		contribution := food.ContributionFor(amount)
		delta := contribution.Sub(existing.PhenylalanineAmount)

		intake, err := newIntakeAggregator(repoFactory.NewDailyIntakeRepository()).applyDelta(ctx, userID, existing.IntakeDate, delta)
		if err != nil {
			return err
		}

		updated := *existing
		updated.Amount = amount
		updated.PhenylalanineAmount = contribution
		if err := consumptionRepo.Update(ctx, &updated); err != nil {
			return translateRepoError(err, "failed to update food consumption")
		}
		consumption = &updated

		user, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}
		check = limitCheck{user: user, intake: intake, delta: delta}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update food consumption",
			slog.String("consumptionID", consumptionID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute update food consumption transaction")
	}

	srv.log(ctx).Info("Food consumption updated",
		slog.String("consumptionID", consumption.ID.String()),
		slog.String("delta", check.delta.String()),
	)
	srv.notifyIfLimitExceeded(ctx, check)

	return consumption, nil
}

// DeleteFoodConsumption removes an event and subtracts its contribution from the day it was booked to.
func (srv *foodConsumptionService) DeleteFoodConsumption(ctx context.Context, userID, consumptionID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		consumptionRepo := repoFactory.NewFoodConsumptionRepository()

		existing, err := findOwnedConsumption(ctx, consumptionRepo, userID, consumptionID)
		if err != nil {
			return err
		}

		aggregator := newIntakeAggregator(repoFactory.NewDailyIntakeRepository())
		if _, err := aggregator.applyDelta(ctx, userID, existing.IntakeDate, existing.PhenylalanineAmount.Neg()); err != nil {
			return err
		}

		if err := consumptionRepo.Delete(ctx, existing.ID); err != nil {
			return translateRepoError(err, "failed to delete food consumption")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete food consumption",
			slog.String("consumptionID", consumptionID.String()),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to execute delete food consumption transaction")
	}

	srv.log(ctx).Info("Food consumption deleted", slog.String("consumptionID", consumptionID.String()))

	return nil
}

// GetFoodConsumption returns one of the user's events.
func (srv *foodConsumptionService) GetFoodConsumption(ctx context.Context, userID, consumptionID uuid.UUID) (*entity.FoodConsumption, error) {
	return findOwnedConsumption(ctx, srv.consumptionRepo, userID, consumptionID)
}

// ListFoodConsumptions returns the events booked to the user's local date.
func (srv *foodConsumptionService) ListFoodConsumptions(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.FoodConsumption, error) {
	consumptions, err := srv.consumptionRepo.FindByUserAndDate(ctx, userID, entity.CalendarDate(date))
	if err != nil {
		return nil, translateRepoError(err, "failed to list food consumptions")
	}

	return consumptions, nil
}

// notifyIfLimitExceeded publishes a limit event when the committed change moved the
// day's total from within the user's limit to above it. Failures are only logged.
func (srv *foodConsumptionService) notifyIfLimitExceeded(ctx context.Context, check limitCheck) {
	if check.user == nil || check.user.DailyLimit == nil || check.intake == nil {
		return
	}

	limit := *check.user.DailyLimit
	after := check.intake.TotalPhenylalanine
	before := after.Sub(check.delta)
	if !after.GreaterThan(limit) || before.GreaterThan(limit) {
		return
	}

	event := &service.DailyLimitExceededEvent{
		RequestID:          deliverycontext.GetRequestIDFromContext(ctx),
		UserID:             check.user.ID.String(),
		Date:               check.intake.Date.Format(entity.DateLayout),
		TotalPhenylalanine: after,
		DailyLimit:         limit,
		OccurredAt:         srv.now().UTC(),
	}
	if err := srv.publisher.PublishDailyLimitExceeded(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish daily limit event",
			slog.String("userID", event.UserID),
			slog.String("date", event.Date),
			slog.Any("error", err),
		)

		return
	}

	srv.log(ctx).Info("Daily limit exceeded", slog.String("userID", event.UserID), slog.String("date", event.Date))
}

// maxAmount is the first value that no longer fits the numeric(12,4) amount column.
var maxAmount = decimal.New(1, 8)

// validateAmount accepts amounts that are stored exactly, so the stored amount
// always reproduces the stored contribution.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("amount must be greater than zero"))
	}
	if !amount.Equal(amount.Truncate(entity.PhenylalanineScale)) {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("amount must have at most %d fractional digits", entity.PhenylalanineScale)))
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("amount is too large"))
	}

	return nil
}

// findOwnedFood hides foods of other users behind ErrFoodNotFound.
func findOwnedFood(ctx context.Context, repo repository.FoodRepository, userID, foodID uuid.UUID) (*entity.Food, error) {
	food, err := repo.FindByID(ctx, foodID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find food")
	}
	if !food.IsOwnedBy(userID) {
		return nil, errors.WithStack(domainerrors.ErrFoodNotFound)
	}

	return food, nil
}

// findOwnedConsumption hides events of other users behind ErrFoodConsumptionNotFound.
func findOwnedConsumption(ctx context.Context, repo repository.FoodConsumptionRepository, userID, consumptionID uuid.UUID) (*entity.FoodConsumption, error) {
	consumption, err := repo.FindByID(ctx, consumptionID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find food consumption")
	}
	if !consumption.IsOwnedBy(userID) {
		return nil, errors.WithStack(domainerrors.ErrFoodConsumptionNotFound)
	}

	return consumption, nil
}
