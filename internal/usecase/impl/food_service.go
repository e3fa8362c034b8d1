package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "phecalc/internal/delivery/context"
	"phecalc/internal/domain/entity"
	domainerrors "phecalc/internal/domain/errors"
	"phecalc/internal/domain/repository"
	"phecalc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type foodService struct {
	txManager repository.TransactionManager
	foodRepo  repository.FoodRepository
	logger    *slog.Logger
}

// FoodServiceParams holds dependencies for FoodService, injected by Fx.
type FoodServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	FoodRepo  repository.FoodRepository
	Logger    *slog.Logger
}

// NewFoodService creates a new food service.
func NewFoodService(params FoodServiceParams) usecase.FoodUsecase {
	return &foodService{
		txManager: params.TxManager,
		foodRepo:  params.FoodRepo,
		logger:    params.Logger,
	}
}

func (srv *foodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFood stores a new food for userID with phenylalanine derived from its food type.
func (srv *foodService) CreateFood(ctx context.Context, userID uuid.UUID, input *usecase.CreateFoodInput) (*entity.Food, error) {
	food := &entity.Food{
		UserID:   userID,
		Name:     strings.TrimSpace(input.Name),
		Protein:  input.Protein,
		Calories: input.Calories,
	}
	if err := validateFood(food); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foodType, err := repoFactory.NewFoodTypeRepository().FindByID(ctx, input.FoodTypeID)
		if err != nil {
			return translateRepoError(err, "failed to find food type")
		}
		food.ApplyFoodType(foodType)

		if err := repoFactory.NewFoodRepository().Create(ctx, food); err != nil {
			return translateRepoError(err, "failed to create food")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute create food transaction")
	}

	srv.log(ctx).Info("Food created",
		slog.String("foodID", food.ID.String()),
		slog.String("phenylalanine", food.Phenylalanine.String()),
	)

	return food, nil
}

func (srv *foodService) GetFood(ctx context.Context, userID, foodID uuid.UUID) (*entity.Food, error) {
	return findOwnedFood(ctx, srv.foodRepo, userID, foodID)
}

func (srv *foodService) ListFoods(ctx context.Context, userID uuid.UUID) ([]*entity.Food, error) {
	foods, err := srv.foodRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "failed to list foods")
	}

	return foods, nil
}

// UpdateFood applies the given fields and derives phenylalanine again from the current food type.
// Consumptions already logged keep their stored contribution.
func (srv *foodService) UpdateFood(ctx context.Context, userID, foodID uuid.UUID, input *usecase.UpdateFoodInput) (*entity.Food, error) {
	var food *entity.Food
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foodRepo := repoFactory.NewFoodRepository()

		existing, err := findOwnedFood(ctx, foodRepo, userID, foodID)
		if err != nil {
			return err
		}

		updated := *existing
		if input.Name != nil {
			updated.Name = strings.TrimSpace(*input.Name)
		}
		if input.Protein != nil {
			updated.Protein = *input.Protein
		}
		if input.Calories != nil {
			updated.Calories = *input.Calories
		}
		if err := validateFood(&updated); err != nil {
			return err
		}

		foodTypeID := existing.FoodTypeID
		if input.FoodTypeID != nil {
			foodTypeID = *input.FoodTypeID
		}
		foodType := existing.FoodType
		if foodType == nil || foodType.ID != foodTypeID {
			foodType, err = repoFactory.NewFoodTypeRepository().FindByID(ctx, foodTypeID)
			if err != nil {
				return translateRepoError(err, "failed to find food type")
			}
		}
		updated.ApplyFoodType(foodType)

		if err := foodRepo.Update(ctx, &updated); err != nil {
			return translateRepoError(err, "failed to update food")
		}
		food = &updated

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update food transaction")
	}

	return food, nil
}

// DeleteFood removes an owned food. Foods referenced by consumptions cannot be deleted.
func (srv *foodService) DeleteFood(ctx context.Context, userID, foodID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foodRepo := repoFactory.NewFoodRepository()

		if _, err := findOwnedFood(ctx, foodRepo, userID, foodID); err != nil {
			return err
		}

		if err := foodRepo.Delete(ctx, foodID); err != nil {
			return translateRepoError(err, "failed to delete food")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete food transaction")
	}

	srv.log(ctx).Info("Food deleted", slog.String("foodID", foodID.String()))

	return nil
}

func validateFood(food *entity.Food) error {
	switch {
	case food.Name == "":
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name is required"))
	case food.Protein.IsNegative():
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("protein must not be negative"))
	case food.Calories.IsNegative():
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("calories must not be negative"))
	}

	return nil
}
