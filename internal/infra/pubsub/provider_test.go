package pubsub

import (
	"context"
	"testing"

	"phecalc/config"
	"phecalc/internal/domain/constants"
	"phecalc/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
		check   func(t *testing.T, p service.EventPublisher)
	}{
		{
			name: "not configured",
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &noopPublisher{}, p)
				assert.NoError(t, p.PublishDailyLimitExceeded(context.Background(), &service.DailyLimitExceededEvent{}))
			},
		},
		{
			name:   "local",
			pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:1"},
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &localHTTPPublisher{}, p)
			},
		},
		{
			name:    "local without endpoint",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google without project",
			pubsub:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"},
			wantErr: "project ID is required",
		},
		{
			name:    "unknown provider",
			pubsub:  &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			p, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: newDiscardLogger(),
			})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, p)
			lc.RequireStart().RequireStop()
		})
	}
}
