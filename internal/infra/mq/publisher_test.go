//go:build unit

package mq_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"styleapp-backend/internal/infra/mq"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	requestID := uuid.New()
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("COT", -5*3600))

	t.Run("keeps payload and normalizes time", func(t *testing.T) {
		env := mq.NewEnvelope("bid.created", requestID, []byte(`{"amount":48000}`), at)

		b, err := json.Marshal(env)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(b, &decoded))
		assert.Equal(t, "bid.created", decoded["event_type"])
		assert.Equal(t, requestID.String(), decoded["request_id"])
		assert.Equal(t, map[string]any{"amount": float64(48000)}, decoded["payload"])
		assert.Equal(t, "2025-03-01T15:00:00Z", decoded["published_at"])
	})

	t.Run("empty payload becomes an empty object", func(t *testing.T) {
		env := mq.NewEnvelope("service_request.created", requestID, nil, at)

		b, err := json.Marshal(env)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"payload":{}`)
	})
}

func TestLogDispatcher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	d := mq.NewLogDispatcher(logger)
	requestID := uuid.New()

	err := d.Publish(context.Background(), "service_request.completed", requestID, []byte(`{"app_commission":4800}`))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"event_type":"service_request.completed"`)
	assert.Contains(t, buf.String(), requestID.String())
	assert.NoError(t, d.Close())
}
