package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"phecalc/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishDailyLimitExceeded(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := &service.DailyLimitExceededEvent{
		RequestID:          "req-1",
		UserID:             "user-1",
		Date:               "2024-01-02",
		TotalPhenylalanine: decimal.RequireFromString("320.5"),
		DailyLimit:         decimal.NewFromInt(300),
		OccurredAt:         time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishDailyLimitExceeded(t.Context(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, EventTypeDailyLimitExceeded, received.Message.Attributes["event_type"])
	assert.Equal(t, "user-1", received.Message.Attributes["user_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DailyLimitExceededEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "2024-01-02", decoded.Date)
	assert.True(t, event.TotalPhenylalanine.Equal(decoded.TotalPhenylalanine))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishDailyLimitExceeded(t.Context(), &service.DailyLimitExceededEvent{UserID: "u"})

	assert.ErrorContains(t, err, "non-success status: 500")
}
