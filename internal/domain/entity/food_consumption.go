package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FoodConsumption records a single eating event.
type FoodConsumption struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              uuid.UUID       `json:"user_id"`
	FoodID              uuid.UUID       `json:"food_id"`
	Amount              decimal.Decimal `json:"amount"`               // Quantity in the food's native unit.
	PhenylalanineAmount decimal.Decimal `json:"phenylalanine_amount"` // Contribution in mg at the time of the last write.
	ConsumedAt          time.Time       `json:"consumed_at"`
	IntakeDate          time.Time       `json:"intake_date"` // User-local calendar date the contribution was booked to.
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// IsOwnedBy reports whether the consumption belongs to userID.
func (c *FoodConsumption) IsOwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}
