// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"phecalc/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewFoodTypeRepository creates a new food type repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewFoodTypeRepository() repository.FoodTypeRepository {
	return NewFoodTypeRepository(f.tx)
}

// NewFoodRepository creates a new food repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewFoodRepository() repository.FoodRepository {
	return NewFoodRepository(f.tx)
}

// NewFoodConsumptionRepository creates a new consumption repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewFoodConsumptionRepository() repository.FoodConsumptionRepository {
	return NewFoodConsumptionRepository(f.tx)
}

// NewDailyIntakeRepository creates a new daily intake repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewDailyIntakeRepository() repository.DailyIntakeRepository {
	return NewDailyIntakeRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back when the callback panics, then re-panic for the recover middleware.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// The business error stays the cause so callers can still classify it.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
