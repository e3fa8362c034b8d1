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

// foodConsumptionRepository implements the repository.FoodConsumptionRepository interface.
type foodConsumptionRepository struct {
	db *gorm.DB
}

// NewFoodConsumptionRepository is the constructor for foodConsumptionRepository.
func NewFoodConsumptionRepository(db *gorm.DB) repository.FoodConsumptionRepository {
	return &foodConsumptionRepository{
		db: db,
	}
}

// Create persists a new consumption event.
func (repo *foodConsumptionRepository) Create(ctx context.Context, consumption *entity.FoodConsumption) error {
	consumptionM := fromFoodConsumptionDomain(consumption)

	if err := repo.db.WithContext(ctx).Create(consumptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFoodNotFound
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid food consumption")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create food consumption")
	}

	consumption.ID = consumptionM.ID
	consumption.CreatedAt = consumptionM.CreatedAt
	consumption.UpdatedAt = consumptionM.UpdatedAt

	return nil
}

// FindByID retrieves a consumption event by its unique ID.
func (repo *foodConsumptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FoodConsumption, error) {
	var consumptionM model.FoodConsumptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&consumptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodConsumptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find food consumption by ID")
	}

	return toFoodConsumptionDomain(&consumptionM), nil
}

// FindByUserAndDate lists the events booked to the given local date, oldest first.
func (repo *foodConsumptionRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]*entity.FoodConsumption, error) {
	var consumptionModels []*model.FoodConsumptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND intake_date = ?", userID, dateKey(date)).
		Order("consumed_at ASC").
		Find(&consumptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find food consumptions by date")
	}

	consumptions := make([]*entity.FoodConsumption, 0, len(consumptionModels))
	for _, consumptionM := range consumptionModels {
		consumptions = append(consumptions, toFoodConsumptionDomain(consumptionM))
	}

	return consumptions, nil
}

// Update stores the amount and contribution of an existing event.
func (repo *foodConsumptionRepository) Update(ctx context.Context, consumption *entity.FoodConsumption) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.FoodConsumptionModel{}).
		Where("id = ?", consumption.ID).
		Updates(map[string]any{
			"amount":               consumption.Amount,
			"phenylalanine_amount": consumption.PhenylalanineAmount,
			"updated_at":           now,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid food consumption")
		}

		return errors.Wrap(result.Error, "failed to update food consumption")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodConsumptionNotFound
	}

	consumption.UpdatedAt = now

	return nil
}

// Delete removes a consumption event by its ID.
func (repo *foodConsumptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FoodConsumptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete food consumption")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFoodConsumptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFoodConsumptionDomain(data *model.FoodConsumptionModel) *entity.FoodConsumption {
	if data == nil {
		return nil
	}

	return &entity.FoodConsumption{
		ID:                  data.ID,
		UserID:              data.UserID,
		FoodID:              data.FoodID,
		Amount:              data.Amount,
		PhenylalanineAmount: data.PhenylalanineAmount,
		ConsumedAt:          data.ConsumedAt.UTC(),
		IntakeDate:          entity.CalendarDate(data.IntakeDate),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromFoodConsumptionDomain(data *entity.FoodConsumption) *model.FoodConsumptionModel {
	if data == nil {
		return nil
	}

	return &model.FoodConsumptionModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		FoodID:              data.FoodID,
		Amount:              data.Amount,
		PhenylalanineAmount: data.PhenylalanineAmount,
		ConsumedAt:          data.ConsumedAt,
		IntakeDate:          entity.CalendarDate(data.IntakeDate),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
