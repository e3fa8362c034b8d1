package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyIntake is the running phenylalanine total of one user on one local calendar date.
type DailyIntake struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	Date               time.Time       `json:"date"`
	TotalPhenylalanine decimal.Decimal `json:"total_phenylalanine"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NewDailyIntake returns an unsaved zero total for userID on date.
func NewDailyIntake(userID uuid.UUID, date time.Time) *DailyIntake {
	return &DailyIntake{
		UserID:             userID,
		Date:               CalendarDate(date),
		TotalPhenylalanine: decimal.Zero,
	}
}

// IsNew reports whether the total has not been persisted yet.
func (d *DailyIntake) IsNew() bool {
	return d.ID == uuid.Nil
}

// DailyIntakeSummary is a day's total measured against the user's daily limit.
type DailyIntakeSummary struct {
	Date               time.Time        `json:"date"`
	TotalPhenylalanine decimal.Decimal  `json:"total_phenylalanine"`
	DailyLimit         *decimal.Decimal `json:"daily_limit"`
	Remaining          *decimal.Decimal `json:"remaining"`
	Exceeded           bool             `json:"exceeded"`
}

// Summarize measures total against limit. A nil limit yields no remaining value and never exceeds.
func Summarize(date time.Time, total decimal.Decimal, limit *decimal.Decimal) *DailyIntakeSummary {
	s := &DailyIntakeSummary{
		Date:               CalendarDate(date),
		TotalPhenylalanine: total,
		DailyLimit:         limit,
	}
	if limit == nil {
		return s
	}

	remaining := limit.Sub(total)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	s.Remaining = &remaining
	s.Exceeded = total.GreaterThan(*limit)

	return s
}
