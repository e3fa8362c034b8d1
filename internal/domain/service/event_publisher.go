package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyLimitExceededEvent is emitted when a consumption pushes a day's total past the user's limit.
type DailyLimitExceededEvent struct {
	RequestID          string          `json:"request_id,omitempty"` // For distributed tracing
	UserID             string          `json:"user_id"`
	Date               string          `json:"date"` // YYYY-MM-DD in the user's zone.
	TotalPhenylalanine decimal.Decimal `json:"total_phenylalanine"`
	DailyLimit         decimal.Decimal `json:"daily_limit"`
	OccurredAt         time.Time       `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDailyLimitExceeded publishes a limit event for async processing
	PublishDailyLimitExceeded(ctx context.Context, event *DailyLimitExceededEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
