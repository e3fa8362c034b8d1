package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FoodConsumptionModel mirrors the 'food_consumptions' table.
type FoodConsumptionModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index:idx_food_consumptions_user_date,priority:1"`
	FoodID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	User                *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Food                *FoodModel      `gorm:"foreignKey:FoodID;constraint:OnDelete:RESTRICT"`
	Amount              decimal.Decimal `gorm:"type:numeric(12,4);not null;check:chk_food_consumptions_amount,amount > 0"`
	PhenylalanineAmount decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	ConsumedAt          time.Time       `gorm:"type:timestamptz;not null"`
	IntakeDate          time.Time       `gorm:"type:date;not null;index:idx_food_consumptions_user_date,priority:2"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodConsumptionModel) TableName() string {
	return "food_consumptions"
}
