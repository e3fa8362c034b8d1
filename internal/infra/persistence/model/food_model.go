package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FoodTypeModel mirrors the 'food_types' table.
type FoodTypeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Multiplier int       `gorm:"not null;check:chk_food_types_multiplier,multiplier > 0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodTypeModel) TableName() string {
	return "food_types"
}

// FoodModel mirrors the 'foods' table. Deleting a referenced food type is restricted.
type FoodModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	FoodTypeID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	FoodType      *FoodTypeModel  `gorm:"foreignKey:FoodTypeID;constraint:OnDelete:RESTRICT"`
	User          *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name          string          `gorm:"type:varchar(150);not null"`
	Protein       decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	Calories      decimal.Decimal `gorm:"type:numeric(12,4);not null"`
	Phenylalanine decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodModel) TableName() string {
	return "foods"
}
