package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrDailyIntakeBelowZero.WithDetails("total 10 delta -20")
	wrapped := errors.Wrap(detailed, "apply delta")

	assert.True(t, errors.Is(wrapped, ErrDailyIntakeBelowZero))
	assert.False(t, errors.Is(wrapped, ErrDailyIntakeNotFound))
	assert.Equal(t, "total 10 delta -20", detailed.Details())
	assert.Equal(t, "", ErrDailyIntakeBelowZero.Details())
}

func TestBaseError_AsAppError(t *testing.T) {
	err := ErrFoodNotFound.WrapMessage("lookup food")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "FOOD_NOT_FOUND", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert daily intake")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}
