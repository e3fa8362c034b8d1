package handler

import (
	"log/slog"
	"net/http"

	"phecalc/internal/delivery/api/response"
	"phecalc/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DailyIntakeHandlerParams holds dependencies for DailyIntakeHandler, injected by Fx.
type DailyIntakeHandlerParams struct {
	fx.In

	DailyIntakeUC usecase.DailyIntakeUsecase
	Logger        *slog.Logger
}

// DailyIntakeHandler serves the caller's daily totals
type DailyIntakeHandler struct {
	dailyIntakeUC usecase.DailyIntakeUsecase
	logger        *slog.Logger
}

// NewDailyIntakeHandler is the constructor for DailyIntakeHandler
func NewDailyIntakeHandler(params DailyIntakeHandlerParams) *DailyIntakeHandler {
	return &DailyIntakeHandler{
		dailyIntakeUC: params.DailyIntakeUC,
		logger:        params.Logger,
	}
}

// GetDailyIntake returns the total of ?date= measured against the caller's limit
func (h *DailyIntakeHandler) GetDailyIntake(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	date, err := parseDateQuery(c, "date")
	if err != nil {
		return err
	}

	summary, err := h.dailyIntakeUC.GetSummary(c.Request().Context(), userID, date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDailyIntakeSummaryResponse(summary))
}

// ListDailyIntakes returns the stored totals between ?from= and ?to=
func (h *DailyIntakeHandler) ListDailyIntakes(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	from, err := parseDateQuery(c, "from")
	if err != nil {
		return err
	}

	to, err := parseDateQuery(c, "to")
	if err != nil {
		return err
	}

	intakes, err := h.dailyIntakeUC.ListRange(c.Request().Context(), userID, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDailyIntakeResponses(intakes))
}
