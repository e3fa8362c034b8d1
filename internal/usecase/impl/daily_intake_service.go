package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"phecalc/config"
	deliverycontext "phecalc/internal/delivery/context"
	"phecalc/internal/domain/entity"
	domainerrors "phecalc/internal/domain/errors"
	"phecalc/internal/domain/repository"
	"phecalc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type dailyIntakeService struct {
	txManager       repository.TransactionManager
	dailyIntakeRepo repository.DailyIntakeRepository
	userRepo        repository.UserRepository
	maxRangeDays    int
	logger          *slog.Logger
}

// DailyIntakeServiceParams holds dependencies for DailyIntakeService, injected by Fx.
type DailyIntakeServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	DailyIntakeRepo repository.DailyIntakeRepository
	UserRepo        repository.UserRepository
	Config          *config.Config
	Logger          *slog.Logger
}

// NewDailyIntakeService creates a new daily intake service.
func NewDailyIntakeService(params DailyIntakeServiceParams) usecase.DailyIntakeUsecase {
	maxRangeDays := 0
	if params.Config != nil && params.Config.Intake != nil {
		maxRangeDays = params.Config.Intake.MaxRangeDays
	}

	return &dailyIntakeService{
		txManager:       params.TxManager,
		dailyIntakeRepo: params.DailyIntakeRepo,
		userRepo:        params.UserRepo,
		maxRangeDays:    maxRangeDays,
		logger:          params.Logger,
	}
}

func (srv *dailyIntakeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ApplyDelta adjusts a day's total in its own transaction.
func (srv *dailyIntakeService) ApplyDelta(ctx context.Context, userID uuid.UUID, date time.Time, delta decimal.Decimal) (*entity.DailyIntake, error) {
	var intake *entity.DailyIntake
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		updated, err := newIntakeAggregator(repoFactory.NewDailyIntakeRepository()).applyDelta(ctx, userID, date, delta)
		if err != nil {
			return err
		}
		intake = updated

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Daily intake adjustment rejected",
			slog.String("userID", userID.String()),
			slog.String("date", date.Format(entity.DateLayout)),
			slog.String("delta", delta.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to apply daily intake delta")
	}

	srv.log(ctx).Debug("Daily intake adjusted",
		slog.String("userID", userID.String()),
		slog.String("date", intake.Date.Format(entity.DateLayout)),
		slog.String("total", intake.TotalPhenylalanine.String()),
	)

	return intake, nil
}

// FindByDate returns the stored total of a day.
func (srv *dailyIntakeService) FindByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyIntake, error) {
	return newIntakeAggregator(srv.dailyIntakeRepo).findByDate(ctx, userID, date)
}

// GetSummary measures the stored total of a day against the user's daily limit.
func (srv *dailyIntakeService) GetSummary(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyIntakeSummary, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	intake, err := srv.FindByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	return entity.Summarize(intake.Date, intake.TotalPhenylalanine, user.DailyLimit), nil
}

// ListRange returns the stored totals between from and to inclusive, ordered by date.
func (srv *dailyIntakeService) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.DailyIntake, error) {
	from, to = entity.CalendarDate(from), entity.CalendarDate(to)
	if to.Before(from) {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("from must not be after to"))
	}

	days := int(to.Sub(from).Hours()/24) + 1
	if srv.maxRangeDays > 0 && days > srv.maxRangeDays {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("range spans %d days, at most %d allowed", days, srv.maxRangeDays),
		))
	}

	intakes, err := srv.dailyIntakeRepo.FindByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, translateRepoError(err, "failed to list daily intakes")
	}

	return intakes, nil
}
