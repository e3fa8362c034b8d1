// Package model holds the GORM representations of the persisted tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string              `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string              `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string              `gorm:"type:varchar(255);not null"`
	Timezone     string              `gorm:"type:varchar(64);not null;default:'UTC'"`
	Role         string              `gorm:"type:varchar(20);not null;default:'user'"`
	DailyLimit   decimal.NullDecimal `gorm:"type:numeric(12,4)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
