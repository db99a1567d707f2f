package mq

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogDispatcher writes events to the logger. It is used when no broker URL is
// configured.
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Publish(ctx context.Context, eventType string, requestID uuid.UUID, payload []byte) error {
	d.logger.InfoContext(ctx, "Event dispatched",
		"event_type", eventType,
		"request_id", requestID.String(),
		"payload", string(payload),
	)
	return nil
}

func (d *LogDispatcher) Close() error {
	return nil
}
