package postgres

import (
	"context"
	"log/slog"

	"phecalc/config"
	"phecalc/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Models lists every persisted model in dependency order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.FoodTypeModel{},
		&model.FoodModel{},
		&model.FoodConsumptionModel{},
		&model.DailyIntakeModel{},
	}
}

// AutoMigrate creates or updates the schema, including the unique (user_id, date)
// index and the non-negative CHECK on daily totals.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// MigrateParams defines the dependencies of RunMigrations.
type MigrateParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	DB     *gorm.DB
	Logger *slog.Logger
}

// RunMigrations migrates the schema on startup when env.autoMigrate is set.
func RunMigrations(params MigrateParams) error {
	if !params.Config.Env.AutoMigrate {
		return nil
	}

	params.Logger.Info("Running schema migration")

	return AutoMigrate(params.Ctx, params.DB)
}
