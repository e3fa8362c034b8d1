// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "phecalc/internal/delivery/context"
	"phecalc/internal/domain/entity"
	domainerrors "phecalc/internal/domain/errors"
	"phecalc/internal/domain/repository"
	"phecalc/internal/domain/service"
	"phecalc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and signs the new user in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := normalizeEmail(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("username, email and password are required"))
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}
	user.SetTimezone(input.Timezone)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := ensureUsernameAvailable(ctx, userRepo, username); err != nil {
			return err
		}
		if err := ensureEmailAvailable(ctx, userRepo, email); err != nil {
			return err
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return translateRepoError(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	tokens, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{User: user, Tokens: tokens}, nil
}

// Login orchestrates the user login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	tokens, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.AuthOutput{User: user, Tokens: tokens}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	tokens, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return tokens, nil
}

func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile changes email, timezone or daily limit. A timezone that does not
// resolve is stored as UTC.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if input.DailyLimit != nil && input.DailyLimit.IsNegative() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("daily limit must not be negative"))
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		updated := *existing
		if input.Email != nil {
			email := normalizeEmail(*input.Email)
			if email == "" {
				return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("email must not be empty"))
			}
			if email != existing.Email {
				if err := ensureEmailAvailable(ctx, userRepo, email); err != nil {
					return err
				}
			}
			updated.Email = email
		}
		if input.Timezone != nil {
			updated.SetTimezone(*input.Timezone)
		}
		switch {
		case input.ClearDailyLimit:
			updated.DailyLimit = nil
		case input.DailyLimit != nil:
			limit := *input.DailyLimit
			updated.DailyLimit = &limit
		}

		if err := userRepo.Update(ctx, &updated); err != nil {
			return translateRepoError(err, "failed to update user")
		}
		user = &updated

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update profile transaction")
	}

	srv.log(ctx).Info("Profile updated", slog.String("userID", userID.String()))

	return user, nil
}

// ChangePassword verifies the current password and stores a hash of the new one.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if input.NewPassword == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("new password is required"))
	}
	if input.NewPassword == input.OldPassword {
		return errors.WithStack(domainerrors.ErrPasswordUnchanged)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}

		if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
			return errors.WithStack(domainerrors.ErrPasswordMismatch)
		}

		hashedPassword, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		user.PasswordHash = hashedPassword

		if err := userRepo.Update(ctx, user); err != nil {
			return translateRepoError(err, "failed to update password")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.String("userID", userID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute change password transaction")
	}

	srv.log(ctx).Info("Password changed", slog.String("userID", userID.String()))

	return nil
}

// ChangeUsername renames the account when the new username is free.
func (srv *userService) ChangeUsername(ctx context.Context, userID uuid.UUID, username string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("username is required"))
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to find user")
		}
		if existing.Username == username {
			user = existing

			return nil
		}

		if err := ensureUsernameAvailable(ctx, userRepo, username); err != nil {
			return err
		}

		updated := *existing
		updated.Username = username
		if err := userRepo.Update(ctx, &updated); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return errors.WithStack(domainerrors.ErrUsernameTaken)
			}

			return translateRepoError(err, "failed to update username")
		}
		user = &updated

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute change username transaction")
	}

	return user, nil
}

// DeleteAccount removes the user together with everything the user owns.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		return translateRepoError(err, "failed to delete user")
	}

	srv.log(ctx).Info("Account deleted", slog.String("userID", userID.String()))

	return nil
}

func ensureUsernameAvailable(ctx context.Context, userRepo repository.UserRepository, username string) error {
	exists, err := userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return errors.Wrap(err, "failed to check username")
	}
	if exists {
		return errors.WithStack(domainerrors.ErrUsernameTaken)
	}

	return nil
}

func ensureEmailAvailable(ctx context.Context, userRepo repository.UserRepository, email string) error {
	exists, err := userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to check email")
	}
	if exists {
		return errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
