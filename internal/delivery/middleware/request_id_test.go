package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "phecalc/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "propagates client id", incoming: "client-id-1"},
		{name: "generates id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			m := NewRequestIDMiddleware(logger)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxRequestID string
			err := m.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				ctxRequestID = deliverycontext.GetRequestIDFromContext(ctx)
				deliverycontext.GetLoggerOrDefault(ctx, nil).Info("inside handler")

				return nil
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, headerID)
			assert.Equal(t, headerID, ctxRequestID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, headerID)
			}
			assert.Contains(t, buf.String(), `"request_id":"`+headerID+`"`)
		})
	}
}
