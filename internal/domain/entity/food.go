package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FoodType groups foods that share a protein-to-phenylalanine conversion factor.
type FoodType struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Multiplier int       `json:"multiplier"` // mg phenylalanine per g protein.
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Food is a user-defined item that can be logged as consumed.
type Food struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"` // Owner of the food.
	FoodTypeID    uuid.UUID       `json:"food_type_id"`
	FoodType      *FoodType       `json:"food_type,omitempty"`
	Name          string          `json:"name"`
	Protein       decimal.Decimal `json:"protein"`       // g protein per 100 units.
	Calories      decimal.Decimal `json:"calories"`      // kcal per 100 units.
	Phenylalanine decimal.Decimal `json:"phenylalanine"` // mg per 1000 units, derived from Protein and the type's multiplier.
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ApplyFoodType attaches ft and recomputes the derived phenylalanine content.
func (f *Food) ApplyFoodType(ft *FoodType) {
	f.FoodType = ft
	f.FoodTypeID = ft.ID
	f.Phenylalanine = DerivePhenylalanine(f.Protein, ft.Multiplier)
}

// ContributionFor returns the phenylalanine contributed by consuming amount units of the food.
func (f *Food) ContributionFor(amount decimal.Decimal) decimal.Decimal {
	return CalculatePhenylalanine(f.Phenylalanine, amount)
}

// IsOwnedBy reports whether userID owns the food.
func (f *Food) IsOwnedBy(userID uuid.UUID) bool {
	return f.UserID == userID
}
