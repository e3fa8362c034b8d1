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

type foodTypeService struct {
	foodTypeRepo repository.FoodTypeRepository
	logger       *slog.Logger
}

// FoodTypeServiceParams holds dependencies for FoodTypeService, injected by Fx.
type FoodTypeServiceParams struct {
	fx.In

	FoodTypeRepo repository.FoodTypeRepository
	Logger       *slog.Logger
}

// NewFoodTypeService creates a new food type service.
func NewFoodTypeService(params FoodTypeServiceParams) usecase.FoodTypeUsecase {
	return &foodTypeService{
		foodTypeRepo: params.FoodTypeRepo,
		logger:       params.Logger,
	}
}

func (srv *foodTypeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *foodTypeService) CreateFoodType(ctx context.Context, input *usecase.CreateFoodTypeInput) (*entity.FoodType, error) {
	foodType := &entity.FoodType{
		Name:       strings.TrimSpace(input.Name),
		Multiplier: input.Multiplier,
	}
	if err := validateFoodType(foodType); err != nil {
		return nil, err
	}

	if err := srv.foodTypeRepo.Create(ctx, foodType); err != nil {
		return nil, translateRepoError(err, "failed to create food type")
	}

	srv.log(ctx).Info("Food type created", slog.String("foodTypeID", foodType.ID.String()), slog.String("name", foodType.Name))

	return foodType, nil
}

func (srv *foodTypeService) GetFoodType(ctx context.Context, id uuid.UUID) (*entity.FoodType, error) {
	foodType, err := srv.foodTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to find food type")
	}

	return foodType, nil
}

func (srv *foodTypeService) ListFoodTypes(ctx context.Context) ([]*entity.FoodType, error) {
	foodTypes, err := srv.foodTypeRepo.FindAll(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list food types")
	}

	return foodTypes, nil
}

// UpdateFoodType renames a food type or changes its multiplier. Foods keep their derived
// phenylalanine until they are next written.
func (srv *foodTypeService) UpdateFoodType(ctx context.Context, id uuid.UUID, input *usecase.UpdateFoodTypeInput) (*entity.FoodType, error) {
	foodType, err := srv.GetFoodType(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		foodType.Name = strings.TrimSpace(*input.Name)
	}
	if input.Multiplier != nil {
		foodType.Multiplier = *input.Multiplier
	}
	if err := validateFoodType(foodType); err != nil {
		return nil, err
	}

	if err := srv.foodTypeRepo.Update(ctx, foodType); err != nil {
		return nil, translateRepoError(err, "failed to update food type")
	}

	return foodType, nil
}

func (srv *foodTypeService) DeleteFoodType(ctx context.Context, id uuid.UUID) error {
	if err := srv.foodTypeRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete food type")
	}

	srv.log(ctx).Info("Food type deleted", slog.String("foodTypeID", id.String()))

	return nil
}

func validateFoodType(foodType *entity.FoodType) error {
	if foodType.Name == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name is required"))
	}
	if foodType.Multiplier <= 0 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("multiplier must be greater than zero"))
	}

	return nil
}
