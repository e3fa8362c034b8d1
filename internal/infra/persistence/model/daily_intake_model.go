package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyIntakeModel mirrors the 'daily_intakes' table. There is at most one row per user and date,
// and the total is never negative.
type DailyIntakeModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_daily_intakes_user_date,priority:1"`
	User               *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Date               time.Time       `gorm:"type:date;not null;uniqueIndex:uq_daily_intakes_user_date,priority:2"`
	TotalPhenylalanine decimal.Decimal `gorm:"type:numeric(12,4);not null;default:0;check:chk_daily_intakes_total_non_negative,total_phenylalanine >= 0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailyIntakeModel) TableName() string {
	return "daily_intakes"
}
