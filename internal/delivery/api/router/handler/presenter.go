package handler

import (
	"time"

	"phecalc/internal/domain/entity"
	"phecalc/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User   *entity.User       `json:"user"`
	Tokens *service.TokenPair `json:"tokens"`
}

// DailyIntakeResponse is a stored daily total.
type DailyIntakeResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Date               string          `json:"date"`
	TotalPhenylalanine decimal.Decimal `json:"total_phenylalanine"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// DailyIntakeSummaryResponse is a daily total measured against the user's limit.
type DailyIntakeSummaryResponse struct {
	Date               string           `json:"date"`
	TotalPhenylalanine decimal.Decimal  `json:"total_phenylalanine"`
	DailyLimit         *decimal.Decimal `json:"daily_limit"`
	Remaining          *decimal.Decimal `json:"remaining"`
	Exceeded           bool             `json:"exceeded"`
}

// FoodConsumptionResponse is a recorded eating event.
type FoodConsumptionResponse struct {
	ID                  uuid.UUID       `json:"id"`
	FoodID              uuid.UUID       `json:"food_id"`
	Amount              decimal.Decimal `json:"amount"`
	PhenylalanineAmount decimal.Decimal `json:"phenylalanine_amount"`
	ConsumedAt          time.Time       `json:"consumed_at"`
	IntakeDate          string          `json:"intake_date"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func toDailyIntakeResponse(intake *entity.DailyIntake) *DailyIntakeResponse {
	return &DailyIntakeResponse{
		ID:                 intake.ID,
		Date:               intake.Date.Format(entity.DateLayout),
		TotalPhenylalanine: intake.TotalPhenylalanine,
		UpdatedAt:          intake.UpdatedAt,
	}
}

func toDailyIntakeResponses(intakes []*entity.DailyIntake) []*DailyIntakeResponse {
	out := make([]*DailyIntakeResponse, 0, len(intakes))
	for _, intake := range intakes {
		out = append(out, toDailyIntakeResponse(intake))
	}

	return out
}

func toDailyIntakeSummaryResponse(summary *entity.DailyIntakeSummary) *DailyIntakeSummaryResponse {
	return &DailyIntakeSummaryResponse{
		Date:               summary.Date.Format(entity.DateLayout),
		TotalPhenylalanine: summary.TotalPhenylalanine,
		DailyLimit:         summary.DailyLimit,
		Remaining:          summary.Remaining,
		Exceeded:           summary.Exceeded,
	}
}

func toFoodConsumptionResponse(consumption *entity.FoodConsumption) *FoodConsumptionResponse {
	return &FoodConsumptionResponse{
		ID:                  consumption.ID,
		FoodID:              consumption.FoodID,
		Amount:              consumption.Amount,
		PhenylalanineAmount: consumption.PhenylalanineAmount,
		ConsumedAt:          consumption.ConsumedAt,
		IntakeDate:          consumption.IntakeDate.Format(entity.DateLayout),
		UpdatedAt:           consumption.UpdatedAt,
	}
}

func toFoodConsumptionResponses(consumptions []*entity.FoodConsumption) []*FoodConsumptionResponse {
	out := make([]*FoodConsumptionResponse, 0, len(consumptions))
	for _, consumption := range consumptions {
		out = append(out, toFoodConsumptionResponse(consumption))
	}

	return out
}
