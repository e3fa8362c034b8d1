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
	"gorm.io/gorm/clause"
)

// dailyIntakeRepository implements the repository.DailyIntakeRepository interface.
type dailyIntakeRepository struct {
	db *gorm.DB
}

// NewDailyIntakeRepository is the constructor for dailyIntakeRepository.
func NewDailyIntakeRepository(db *gorm.DB) repository.DailyIntakeRepository {
	return &dailyIntakeRepository{
		db: db,
	}
}

// FindByUserAndDate reads the total for a user and date without locking.
func (repo *dailyIntakeRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyIntake, error) {
	return repo.findOne(repo.db.WithContext(ctx), userID, date)
}

// FindByUserAndDateForUpdate reads the total with SELECT ... FOR UPDATE.
// Concurrent writers to the same day queue behind the lock until this transaction ends.
func (repo *dailyIntakeRepository) FindByUserAndDateForUpdate(ctx context.Context, userID uuid.UUID, date time.Time) (*entity.DailyIntake, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID, date)
}

func (repo *dailyIntakeRepository) findOne(db *gorm.DB, userID uuid.UUID, date time.Time) (*entity.DailyIntake, error) {
	var intakeM model.DailyIntakeModel

	if err := db.
		Where("user_id = ? AND date = ?", userID, dateKey(date)).
		First(&intakeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDailyIntakeNotFound
		}

		return nil, errors.Wrap(err, "failed to find daily intake")
	}

	return toDailyIntakeDomain(&intakeM), nil
}

// FindByUserBetween lists stored totals in [from, to] ordered by date.
func (repo *dailyIntakeRepository) FindByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.DailyIntake, error) {
	var intakeModels []*model.DailyIntakeModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dateKey(from), dateKey(to)).
		Order("date ASC").
		Find(&intakeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list daily intakes")
	}

	intakes := make([]*entity.DailyIntake, 0, len(intakeModels))
	for _, intakeM := range intakeModels {
		intakes = append(intakes, toDailyIntakeDomain(intakeM))
	}

	return intakes, nil
}

// Create inserts a new total. A row inserted concurrently for the same user and date
// absorbs this total instead, and intake is refreshed from the stored row.
func (repo *dailyIntakeRepository) Create(ctx context.Context, intake *entity.DailyIntake) error {
	intakeM := fromDailyIntakeDomain(intake)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
				DoUpdates: clause.Assignments(map[string]any{
					"total_phenylalanine": gorm.Expr("daily_intakes.total_phenylalanine + EXCLUDED.total_phenylalanine"),
					"updated_at":          gorm.Expr("EXCLUDED.updated_at"),
				}),
			},
			clause.Returning{},
		).
		Create(intakeM).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return repository.ErrNegativeDailyIntake
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create daily intake")
	}

	*intake = *toDailyIntakeDomain(intakeM)

	return nil
}

// UpdateTotal overwrites the total of an existing row and refreshes intake.UpdatedAt.
func (repo *dailyIntakeRepository) UpdateTotal(ctx context.Context, intake *entity.DailyIntake) error {
	updatedAt := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.DailyIntakeModel{}).
		Where("id = ?", intake.ID).
		Updates(map[string]any{
			"total_phenylalanine": intake.TotalPhenylalanine,
			"updated_at":          updatedAt,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrNegativeDailyIntake
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update daily intake")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDailyIntakeNotFound
	}

	intake.UpdatedAt = updatedAt

	return nil
}

// dateKey renders a calendar date for comparison against DATE columns.
// Passing text keeps PostgreSQL from casting the column through the session time zone.
func dateKey(date time.Time) string {
	return date.Format(entity.DateLayout)
}

// --- Mapper Functions ---

func toDailyIntakeDomain(data *model.DailyIntakeModel) *entity.DailyIntake {
	if data == nil {
		return nil
	}

	return &entity.DailyIntake{
		ID:                 data.ID,
		UserID:             data.UserID,
		Date:               entity.CalendarDate(data.Date),
		TotalPhenylalanine: data.TotalPhenylalanine,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromDailyIntakeDomain(data *entity.DailyIntake) *model.DailyIntakeModel {
	if data == nil {
		return nil
	}

	return &model.DailyIntakeModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Date:               entity.CalendarDate(data.Date),
		TotalPhenylalanine: data.TotalPhenylalanine,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
