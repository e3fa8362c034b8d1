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

// foodRepository implements the repository.FoodRepository interface.
type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepository{
		db: db,
	}
}

// Create persists a new food.
func (repo *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	foodM := fromFoodDomain(food)

	if err := repo.db.WithContext(ctx).Omit("FoodType", "User").Create(foodM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFoodTypeNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required food information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food")
	}

	food.ID = foodM.ID
	food.CreatedAt = foodM.CreatedAt
	food.UpdatedAt = foodM.UpdatedAt

	return nil
}

// FindByID retrieves a food with its food type.
func (repo *foodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var foodM model.FoodModel

	if err := repo.db.WithContext(ctx).
		Preload("FoodType").
		Where("id = ?", id).
		First(&foodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by ID")
	}

	return toFoodDomain(&foodM), nil
}

// FindByUser lists the foods owned by userID.
func (repo *foodRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Food, error) {
	var foodModels []*model.FoodModel

	if err := repo.db.WithContext(ctx).
		Preload("FoodType").
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&foodModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find foods by user")
	}

	foods := make([]*entity.Food, 0, len(foodModels))
	for _, foodM := range foodModels {
		foods = append(foods, toFoodDomain(foodM))
	}

	return foods, nil
}

// Update modifies an existing food.
func (repo *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	foodM := fromFoodDomain(food)
	foodM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.FoodModel{}).
		Where("id = ?", food.ID).
		Select("food_type_id", "name", "protein", "calories", "phenylalanine", "updated_at").
		Updates(foodM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrFoodTypeNotFound
		}

		return errors.Wrap(result.Error, "failed to update food")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodNotFound
	}

	food.UpdatedAt = foodM.UpdatedAt

	return nil
}

// Delete removes a food. Foods referenced by consumptions cannot be removed.
func (repo *foodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FoodModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrFoodInUse
		}

		return errors.Wrap(result.Error, "failed to delete food")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFoodDomain(data *model.FoodModel) *entity.Food {
	if data == nil {
		return nil
	}

	return &entity.Food{
		ID:            data.ID,
		UserID:        data.UserID,
		FoodTypeID:    data.FoodTypeID,
		FoodType:      toFoodTypeDomain(data.FoodType),
		Name:          data.Name,
		Protein:       data.Protein,
		Calories:      data.Calories,
		Phenylalanine: data.Phenylalanine,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromFoodDomain(data *entity.Food) *model.FoodModel {
	if data == nil {
		return nil
	}

	return &model.FoodModel{
		ID:            data.ID,
		UserID:        data.UserID,
		FoodTypeID:    data.FoodTypeID,
		Name:          data.Name,
		Protein:       data.Protein,
		Calories:      data.Calories,
		Phenylalanine: data.Phenylalanine,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
