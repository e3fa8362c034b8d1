// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"phecalc/internal/domain/entity"
	"phecalc/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
	Timezone string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpdateProfileInput holds the profile fields to change. Nil fields are left untouched.
type UpdateProfileInput struct {
	Email           *string
	Timezone        *string
	DailyLimit      *decimal.Decimal
	ClearDailyLimit bool
}

// ChangePasswordInput defines the data required to change a password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user together with a fresh token pair.
type AuthOutput struct {
	User   *entity.User
	Tokens *service.TokenPair
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*service.TokenPair, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
	ChangeUsername(ctx context.Context, userID uuid.UUID, username string) (*entity.User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
