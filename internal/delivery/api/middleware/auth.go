// Package middleware contains echo middleware specific to the JSON API.
package middleware

import (
	"strings"

	"phecalc/internal/delivery/api/response"
	domainerrors "phecalc/internal/domain/errors"
	"phecalc/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	bearerPrefix     = "Bearer "
)

// AuthMiddleware authenticates requests with JWT access tokens.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller in the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil || claims.UserID == uuid.Nil {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Set(contextKeyUserID, claims.UserID)

		return next(c)
	}
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

func unauthorized(c echo.Context, message string) error {
	return response.Unauthorized(c, domainerrors.ErrAuthenticationRequired.ErrorCode(), message)
}
