package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type amountRequest struct {
	Amount decimal.Decimal `validate:"gt=0"`
}

type rangeRequest struct {
	From  string           `validate:"required,datetime=2006-01-02"`
	Limit *decimal.Decimal `validate:"omitempty,gte=0"`
}

func TestCustomValidator_Decimal(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&amountRequest{Amount: decimal.RequireFromString("0.5")}))
	assert.Error(t, v.Validate(&amountRequest{Amount: decimal.Zero}))
	assert.Error(t, v.Validate(&amountRequest{Amount: decimal.RequireFromString("-3")}))
}

func TestCustomValidator_DateAndOptionalDecimal(t *testing.T) {
	v := New()
	limit := decimal.RequireFromString("450")
	negative := decimal.RequireFromString("-1")

	assert.NoError(t, v.Validate(&rangeRequest{From: "2024-02-29", Limit: &limit}))
	assert.NoError(t, v.Validate(&rangeRequest{From: "2024-02-29"}))
	assert.Error(t, v.Validate(&rangeRequest{From: "2024-02-29", Limit: &negative}))
	assert.Error(t, v.Validate(&rangeRequest{From: "2023-02-29"}))
	assert.Error(t, v.Validate(&rangeRequest{From: "10/05/2024"}))
	assert.Error(t, v.Validate(&rangeRequest{}))
}
