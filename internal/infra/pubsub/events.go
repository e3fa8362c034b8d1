package pubsub

import (
	"encoding/json"

	"phecalc/internal/domain/service"

	"github.com/pkg/errors"
)

// EventTypeDailyLimitExceeded is the "event_type" attribute of limit events.
const EventTypeDailyLimitExceeded = "daily_limit_exceeded"

// encodeDailyLimitExceeded serializes the event and builds the message attributes
// used by subscribers for filtering and tracing.
func encodeDailyLimitExceeded(event *service.DailyLimitExceededEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"event_type": EventTypeDailyLimitExceeded,
		"user_id":    event.UserID,
		"date":       event.Date,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}
