package postgres

import (
	"context"
	"time"

	"phecalc/internal/domain/entity"
	domainerrors "phecalc/internal/domain/errors"
	"phecalc/internal/domain/repository"
	"phecalc/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// foodTypeRepository implements the repository.FoodTypeRepository interface.
type foodTypeRepository struct {
	db *gorm.DB
}

// NewFoodTypeRepository is the constructor for foodTypeRepository.
func NewFoodTypeRepository(db *gorm.DB) repository.FoodTypeRepository {
	return &foodTypeRepository{
		db: db,
	}
}

// Create persists a new food type.
func (repo *foodTypeRepository) Create(ctx context.Context, foodType *entity.FoodType) error {
	foodTypeM := fromFoodTypeDomain(foodType)

	if err := repo.db.WithContext(ctx).Create(foodTypeM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid food type")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food type")
	}

	foodType.ID = foodTypeM.ID
	foodType.CreatedAt = foodTypeM.CreatedAt
	foodType.UpdatedAt = foodTypeM.UpdatedAt

	return nil
}

// FindByID retrieves a food type by its unique ID.
func (repo *foodTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodType, error) {
	var foodTypeM model.FoodTypeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&foodTypeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find food type by ID")
	}

	return toFoodTypeDomain(&foodTypeM), nil
}

// FindAll lists every food type ordered by name.
func (repo *foodTypeRepository) FindAll(ctx context.Context) ([]*entity.FoodType, error) {
	var foodTypeModels []*model.FoodTypeModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&foodTypeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list food types")
	}

	foodTypes := make([]*entity.FoodType, 0, len(foodTypeModels))
	for _, foodTypeM := range foodTypeModels {
		foodTypes = append(foodTypes, toFoodTypeDomain(foodTypeM))
	}

	return foodTypes, nil
}

// Update modifies name and multiplier of an existing food type.
func (repo *foodTypeRepository) Update(ctx context.Context, foodType *entity.FoodType) error {
	foodTypeM := fromFoodTypeDomain(foodType)
	foodTypeM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.FoodTypeModel{}).
		Where("id = ?", foodType.ID).
		Select("name", "multiplier", "updated_at").
		Updates(foodTypeM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid food type")
		}

		return errors.Wrap(result.Error, "failed to update food type")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodTypeNotFound
	}

	foodType.UpdatedAt = foodTypeM.UpdatedAt

	return nil
}

// Delete removes a food type. Food types still referenced by foods cannot be removed.
func (repo *foodTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FoodTypeModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrFoodTypeInUse
		}

		return errors.Wrap(result.Error, "failed to delete food type")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodTypeNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFoodTypeDomain(data *model.FoodTypeModel) *entity.FoodType {
	if data == nil {
		return nil
	}

	return &entity.FoodType{
		ID:         data.ID,
		Name:       data.Name,
		Multiplier: data.Multiplier,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromFoodTypeDomain(data *entity.FoodType) *model.FoodTypeModel {
	if data == nil {
		return nil
	}

	return &model.FoodTypeModel{
		ID:         data.ID,
		Name:       data.Name,
		Multiplier: data.Multiplier,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
