package impl

import (
	"context"
	"testing"

	"phecalc/internal/domain/entity"
	domainerrors "phecalc/internal/domain/errors"
	"phecalc/internal/domain/repository"
	"phecalc/internal/domain/service"
	mockRepo "phecalc/internal/mocks/repository"
	mockSvc "phecalc/internal/mocks/service"
	"phecalc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// expectUserTx runs the next transaction against txUserRepo.
func expectUserTx(t *testing.T, fx userServiceFixtures) *mockRepo.MockUserRepository {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	expectTx(fx.txManager, factory)

	return txUserRepo
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Username: "alice",
		Email:    " Alice@Example.com ",
		Password: "Password123!",
		Timezone: "Mars/Olympus",
	}
	tokens := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	txUserRepo := expectUserTx(t, fx)
	txUserRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	txUserRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil)
	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = uuid.New() }).
		Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"user"}).Return(tokens, nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, entity.DefaultTimezone, output.User.Timezone)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, tokens, output.Tokens)
}

func TestUserService_Register_Conflicts(t *testing.T) {
	tests := []struct {
		name        string
		usernameHit bool
		emailHit    bool
		expected    error
	}{
		{name: "username taken", usernameHit: true, expected: domainerrors.ErrUsernameTaken},
		{name: "email registered", emailHit: true, expected: domainerrors.ErrUserAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()

			fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)
			txUserRepo := expectUserTx(t, fx)
			txUserRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(tt.usernameHit, nil)
			if !tt.usernameHit {
				txUserRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(tt.emailHit, nil)
			}

			output, err := fx.service.Register(ctx, &usecase.RegisterUserInput{
				Username: "alice", Email: "alice@example.com", Password: "Password123!",
			})

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, tt.expected))
		})
	}
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hashed", Role: entity.RoleUser}

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		tokens := &service.TokenPair{AccessToken: "a", RefreshToken: "r"}

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
		fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"user"}).Return(tokens, nil)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret"})

		require.NoError(t, err)
		assert.Equal(t, user, output.User)
		assert.Equal(t, tokens, output.Tokens)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "bob").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "secret"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_RefreshToken(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		tokens := &service.TokenPair{AccessToken: "a2", RefreshToken: "r2"}

		fx.tokenService.EXPECT().ValidateRefreshToken("r1").Return(&service.Claims{UserID: userID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleAdmin}, nil)
		fx.tokenService.EXPECT().GenerateTokens(userID, []string{"admin"}).Return(tokens, nil)

		got, err := fx.service.RefreshToken(ctx, "r1")

		require.NoError(t, err)
		assert.Equal(t, tokens, got)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().ValidateRefreshToken("bad").Return(nil, errors.New("token expired"))

		_, err := fx.service.RefreshToken(context.Background(), "bad")

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("r1").Return(&service.Claims{UserID: userID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.RefreshToken(ctx, "r1")

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	oldLimit := dec("250")
	existing := &entity.User{ID: uuid.New(), Email: "alice@example.com", Timezone: "UTC", DailyLimit: &oldLimit}

	txUserRepo := expectUserTx(t, fx)
	txUserRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	txUserRepo.EXPECT().ExistsByEmail(ctx, "new@example.com").Return(false, nil)
	txUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	email := "New@Example.com"
	timezone := "Europe/Berlin"
	limit := dec("400")
	user, err := fx.service.UpdateProfile(ctx, existing.ID, &usecase.UpdateProfileInput{
		Email:      &email,
		Timezone:   &timezone,
		DailyLimit: &limit,
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "Europe/Berlin", user.Timezone)
	require.NotNil(t, user.DailyLimit)
	assert.Equal(t, "400", user.DailyLimit.String())
	assert.Equal(t, "250", existing.DailyLimit.String())
}

func TestUserService_UpdateProfile_ClearLimitAndInvalidTimezone(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	limit := dec("250")
	existing := &entity.User{ID: uuid.New(), Timezone: "Asia/Tokyo", DailyLimit: &limit}

	txUserRepo := expectUserTx(t, fx)
	txUserRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	txUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	timezone := "Not/AZone"
	user, err := fx.service.UpdateProfile(ctx, existing.ID, &usecase.UpdateProfileInput{
		Timezone:        &timezone,
		ClearDailyLimit: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "UTC", user.Timezone)
	assert.Nil(t, user.DailyLimit)
}

func TestUserService_UpdateProfile_NegativeLimit(t *testing.T) {
	fx := createTestUserService(t)
	limit := dec("-1")

	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{DailyLimit: &limit})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_ChangePassword(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		txUserRepo := expectUserTx(t, fx)
		txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, PasswordHash: "old_hash"}, nil)
		fx.hasher.EXPECT().Check("old", "old_hash").Return(true)
		fx.hasher.EXPECT().Hash("new-password").Return("new_hash", nil)
		txUserRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.PasswordHash == "new_hash" })).
			Return(nil)

		err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{OldPassword: "old", NewPassword: "new-password"})

		require.NoError(t, err)
	})

	t.Run("wrong old password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		txUserRepo := expectUserTx(t, fx)
		txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, PasswordHash: "old_hash"}, nil)
		fx.hasher.EXPECT().Check("guess", "old_hash").Return(false)

		err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{OldPassword: "guess", NewPassword: "new-password"})

		assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
	})

	t.Run("unchanged", func(t *testing.T) {
		fx := createTestUserService(t)

		err := fx.service.ChangePassword(context.Background(), userID, &usecase.ChangePasswordInput{OldPassword: "same", NewPassword: "same"})

		assert.True(t, errors.Is(err, domainerrors.ErrPasswordUnchanged))
	})
}

func TestUserService_ChangeUsername(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		txUserRepo := expectUserTx(t, fx)
		txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Username: "alice"}, nil)
		txUserRepo.EXPECT().ExistsByUsername(ctx, "alice2").Return(false, nil)
		txUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

		user, err := fx.service.ChangeUsername(ctx, userID, " alice2 ")

		require.NoError(t, err)
		assert.Equal(t, "alice2", user.Username)
	})

	t.Run("taken", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		txUserRepo := expectUserTx(t, fx)
		txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Username: "alice"}, nil)
		txUserRepo.EXPECT().ExistsByUsername(ctx, "bob").Return(true, nil)

		_, err := fx.service.ChangeUsername(ctx, userID, "bob")

		assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	})
}

func TestUserService_DeleteAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteAccount(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
