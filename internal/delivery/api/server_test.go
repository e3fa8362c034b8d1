package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"phecalc/config"
	apimiddleware "phecalc/internal/delivery/api/middleware"
	"phecalc/internal/delivery/api/router"
	"phecalc/internal/delivery/api/router/handler"
	deliverycontext "phecalc/internal/delivery/context"
	"phecalc/internal/domain/entity"
	domainerrors "phecalc/internal/domain/errors"
	"phecalc/internal/domain/service"
	mockSvc "phecalc/internal/mocks/service"
	mockUC "phecalc/internal/mocks/usecase"
	"phecalc/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAccessToken = "valid-access-token"

type apiFixtures struct {
	echo          *echo.Echo
	userID        uuid.UUID
	userUC        *mockUC.MockUserUsecase
	foodTypeUC    *mockUC.MockFoodTypeUsecase
	foodUC        *mockUC.MockFoodUsecase
	consumptionUC *mockUC.MockFoodConsumptionUsecase
	dailyIntakeUC *mockUC.MockDailyIntakeUsecase
}

func createTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userID := uuid.New()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken(testAccessToken).Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil).Maybe()
	tokenSvc.EXPECT().ValidateAccessToken(mock.Anything).Return(nil, errors.New("token is expired")).Maybe()

	fx := apiFixtures{
		userID:        userID,
		userUC:        mockUC.NewMockUserUsecase(t),
		foodTypeUC:    mockUC.NewMockFoodTypeUsecase(t),
		foodUC:        mockUC.NewMockFoodUsecase(t),
		consumptionUC: mockUC.NewMockFoodConsumptionUsecase(t),
		dailyIntakeUC: mockUC.NewMockDailyIntakeUsecase(t),
	}

	routes := router.NewRouter(router.RouterParams{
		UserHandler:            handler.NewUserHandler(handler.UserHandlerParams{UserUC: fx.userUC, Logger: logger}),
		FoodTypeHandler:        handler.NewFoodTypeHandler(handler.FoodTypeHandlerParams{FoodTypeUC: fx.foodTypeUC, Logger: logger}),
		FoodHandler:            handler.NewFoodHandler(handler.FoodHandlerParams{FoodUC: fx.foodUC, Logger: logger}),
		FoodConsumptionHandler: handler.NewFoodConsumptionHandler(handler.FoodConsumptionHandlerParams{ConsumptionUC: fx.consumptionUC, Logger: logger}),
		DailyIntakeHandler:     handler.NewDailyIntakeHandler(handler.DailyIntakeHandlerParams{DailyIntakeUC: fx.dailyIntakeUC, Logger: logger}),
		AuthMiddleware:         apimiddleware.NewAuthMiddleware(tokenSvc),
	})

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	fx.echo = newEcho(cfg, logger, routes)

	return fx
}

func (fx apiFixtures) do(method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testAccessToken)
	}
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestAPI_Health(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_RequiresAuthentication(t *testing.T) {
	fx := createTestAPI(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header"},
		{name: "not bearer", header: "Basic abc"},
		{name: "invalid token", header: "Bearer expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/foods", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			fx.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "AUTHENTICATION_REQUIRED", decode(t, rec).Error.Code)
		})
	}
}

func TestAPI_Register(t *testing.T) {
	fx := createTestAPI(t)
	user := &entity.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com", Timezone: "UTC", PasswordHash: "secret-hash"}

	fx.userUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterUserInput{Username: "alice", Email: "alice@example.com", Password: "Password123!", Timezone: "Europe/Paris"}).
		Return(&usecase.AuthOutput{User: user, Tokens: &service.TokenPair{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer"}}, nil)

	rec := fx.do(http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"Password123!","timezone":"Europe/Paris"}`, false)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	assert.Contains(t, rec.Body.String(), `"access_token":"a"`)
}

func TestAPI_Register_Validation(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/auth/register", `{"username":"al","email":"not-an-email","password":"short"}`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t, `{"username":"min=3","email":"email","password":"min=8"}`, string(env.Error.Details))
}

func TestAPI_Login_InvalidCredentials(t *testing.T) {
	fx := createTestAPI(t)

	fx.userUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "nope"}).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

	rec := fx.do(http.MethodPost, "/auth/login", `{"username":"alice","password":"nope"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
}

func TestAPI_UpdateProfile(t *testing.T) {
	fx := createTestAPI(t)
	limit := decimal.RequireFromString("450")

	fx.userUC.EXPECT().
		UpdateProfile(mock.Anything, fx.userID, mock.MatchedBy(func(input *usecase.UpdateProfileInput) bool {
			return input.DailyLimit != nil && input.DailyLimit.Equal(limit) &&
				input.Timezone != nil && *input.Timezone == "Asia/Tokyo" &&
				input.Email == nil && !input.ClearDailyLimit
		})).
		Return(&entity.User{ID: fx.userID, Timezone: "Asia/Tokyo", DailyLimit: &limit}, nil)

	rec := fx.do(http.MethodPut, "/api/v1/profile", `{"timezone":"Asia/Tokyo","daily_limit":"450"}`, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"daily_limit":"450"`)
}

func TestAPI_CreateFoodConsumption(t *testing.T) {
	fx := createTestAPI(t)
	foodID := uuid.New()
	consumption := &entity.FoodConsumption{
		ID:                  uuid.New(),
		UserID:              fx.userID,
		FoodID:              foodID,
		Amount:              decimal.RequireFromString("50"),
		PhenylalanineAmount: decimal.RequireFromString("10"),
		ConsumedAt:          time.Date(2024, 5, 10, 22, 0, 0, 0, time.UTC),
		IntakeDate:          time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC),
	}

	fx.consumptionUC.EXPECT().
		CreateFoodConsumption(mock.Anything, fx.userID, foodID, mock.MatchedBy(decimal.RequireFromString("50").Equal)).
		Return(consumption, nil)

	rec := fx.do(http.MethodPost, "/api/v1/food-consumptions", `{"food_id":"`+foodID.String()+`","amount":50}`, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decode(t, rec)
	var body map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "2024-05-11", body["intake_date"])
	assert.Equal(t, "10", body["phenylalanine_amount"])
}

func TestAPI_CreateFoodConsumption_RejectsNonPositiveAmount(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/api/v1/food-consumptions", `{"food_id":"`+uuid.NewString()+`","amount":"0"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t, `{"amount":"gt=0"}`, string(env.Error.Details))
}

func TestAPI_DeleteFoodConsumption_BelowZero(t *testing.T) {
	fx := createTestAPI(t)
	consumptionID := uuid.New()

	fx.consumptionUC.EXPECT().
		DeleteFoodConsumption(mock.Anything, fx.userID, consumptionID).
		Return(errors.Wrap(domainerrors.ErrDailyIntakeBelowZero.WithDetails("date 2024-05-10: total 3, delta -10"), "failed to execute delete"))

	rec := fx.do(http.MethodDelete, "/api/v1/food-consumptions/"+consumptionID.String(), "", true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "DAILY_INTAKE_BELOW_ZERO", env.Error.Code)
	assert.JSONEq(t, `"date 2024-05-10: total 3, delta -10"`, string(env.Error.Details))
}

func TestAPI_DeleteFoodConsumption_NoContent(t *testing.T) {
	fx := createTestAPI(t)
	consumptionID := uuid.New()

	fx.consumptionUC.EXPECT().DeleteFoodConsumption(mock.Anything, fx.userID, consumptionID).Return(nil)

	rec := fx.do(http.MethodDelete, "/api/v1/food-consumptions/"+consumptionID.String(), "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAPI_InvalidPathID(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/api/v1/foods/not-a-uuid", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestAPI_GetDailyIntake(t *testing.T) {
	fx := createTestAPI(t)
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	limit := decimal.RequireFromString("300")
	summary := entity.Summarize(date, decimal.RequireFromString("320.5"), &limit)

	fx.dailyIntakeUC.EXPECT().GetSummary(mock.Anything, fx.userID, date).Return(summary, nil)

	rec := fx.do(http.MethodGet, "/api/v1/daily-intakes?date=2024-05-10", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"date":"2024-05-10","total_phenylalanine":"320.5","daily_limit":"300","remaining":"0","exceeded":true}`,
		string(decode(t, rec).Data))
}

func TestAPI_GetDailyIntake_BadDate(t *testing.T) {
	fx := createTestAPI(t)

	for _, target := range []string{"/api/v1/daily-intakes", "/api/v1/daily-intakes?date=10-05-2024"} {
		rec := fx.do(http.MethodGet, target, "", true)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestAPI_GetDailyIntake_NotFound(t *testing.T) {
	fx := createTestAPI(t)
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	fx.dailyIntakeUC.EXPECT().GetSummary(mock.Anything, fx.userID, date).Return(nil, errors.WithStack(domainerrors.ErrDailyIntakeNotFound))

	rec := fx.do(http.MethodGet, "/api/v1/daily-intakes?date=2024-05-10", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DAILY_INTAKE_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestAPI_ListDailyIntakes(t *testing.T) {
	fx := createTestAPI(t)
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	fx.dailyIntakeUC.EXPECT().ListRange(mock.Anything, fx.userID, from, to).Return([]*entity.DailyIntake{
		{ID: uuid.New(), UserID: fx.userID, Date: from, TotalPhenylalanine: decimal.RequireFromString("12.5")},
	}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/daily-intakes/range?from=2024-05-01&to=2024-05-03", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2024-05-01"`)
}

func TestAPI_UnexpectedErrorIsHidden(t *testing.T) {
	fx := createTestAPI(t)

	fx.foodTypeUC.EXPECT().ListFoodTypes(mock.Anything).Return(nil, errors.New("pq: connection refused"))

	rec := fx.do(http.MethodGet, "/api/v1/food-types", "", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}
