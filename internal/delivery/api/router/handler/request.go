package handler

import (
	"time"

	"phecalc/internal/delivery/api/middleware"
	"phecalc/internal/domain/entity"
	domainerrors "phecalc/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// currentUserID returns the caller set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	return userID, nil
}

func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid " + name))
	}

	return id, nil
}

// parseDateQuery reads a required YYYY-MM-DD query parameter.
func parseDateQuery(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " is required"))
	}

	date, err := entity.ParseDate(raw)
	if err != nil {
		return time.Time{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be formatted as YYYY-MM-DD"))
	}

	return date, nil
}
