// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is an account that logs food consumption and owns its daily totals.
type User struct {
	ID           uuid.UUID        `json:"id"`
	Username     string           `json:"username"`
	Email        string           `json:"email"`
	PasswordHash string           `json:"-"`
	Timezone     string           `json:"timezone"` // IANA zone id, always a resolvable value once stored.
	Role         Role             `json:"role"`
	DailyLimit   *decimal.Decimal `json:"daily_limit"` // Personal phenylalanine allowance in mg, nil when unset.
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Location returns the user's resolved time zone.
func (u *User) Location() *time.Location {
	return ResolveZone(u.Timezone)
}

// SetTimezone stores tz when it resolves, otherwise UTC.
func (u *User) SetTimezone(tz string) {
	u.Timezone = NormalizeTimezone(tz)
}
