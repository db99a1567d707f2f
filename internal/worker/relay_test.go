//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"styleapp-backend/internal/pkg/clock"
	"styleapp-backend/internal/usecase/shared"
	"styleapp-backend/internal/worker"
	sharedmock "styleapp-backend/tests/mock/shared"
	workermock "styleapp-backend/tests/mock/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var relayNow = time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)

type relayFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	notifications *sharedmock.MockNotificationRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	dispatcher    *workermock.MockDispatcher
	relay         *worker.Relay

	inTx         bool
	transactions int
}

func newRelayFixture(t *testing.T) *relayFixture {
	ctrl := gomock.NewController(t)
	f := &relayFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		dispatcher:    workermock.NewMockDispatcher(ctrl),
	}
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().Idempotency().Return(f.idempotency).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			f.inTx = true
			f.transactions++
			defer func() { f.inTx = false }()
			return fn(ctx, f.tx)
		}).AnyTimes()

	cfg := worker.RelayConfig{
		BatchSize:      10,
		MaxAttempts:    3,
		RetryDelay:     30 * time.Second,
		Lease:          2 * time.Minute,
		PublishTimeout: 5 * time.Second,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.relay = worker.NewRelay(f.uow, f.dispatcher, clock.NewMockClock(relayNow), cfg, logger)
	return f
}

func job(eventType string, attempts int32) shared.NotificationJob {
	return shared.NotificationJob{
		ID:        uuid.New(),
		EventType: eventType,
		RequestID: uuid.New(),
		Payload:   []byte(`{"status":"accepted"}`),
		Attempts:  attempts,
		RunAt:     relayNow,
	}
}

func TestRelay_RunOnce(t *testing.T) {
	t.Run("publishes and marks each due job sent", func(t *testing.T) {
		f := newRelayFixture(t)
		jobs := []shared.NotificationJob{job("service_request.accepted", 0), job("bid.rejected", 0)}
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), relayNow, relayNow.Add(2*time.Minute), int32(10)).Return(jobs, nil).Times(1)
		for _, j := range jobs {
			f.dispatcher.EXPECT().Publish(gomock.Any(), j.EventType, j.RequestID, j.Payload).Return(nil).Times(1)
			f.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), j.ID).Return(nil).Times(1)
		}

		stats, err := f.relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, worker.RelayStats{Claimed: 2, Sent: 2}, stats)
	})

	t.Run("failed publish is retried with linear backoff", func(t *testing.T) {
		f := newRelayFixture(t)
		j := job("service_request.completed", 1)
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shared.NotificationJob{j}, nil).Times(1)
		f.dispatcher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("channel closed")).Times(1)
		f.notifications.EXPECT().
			Reschedule(gomock.Any(), gomock.Any(), j.ID, shared.JobStatusQueued, "channel closed", relayNow.Add(time.Minute)).
			Return(nil).Times(1)

		stats, err := f.relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, worker.RelayStats{Claimed: 1, Retried: 1}, stats)
	})

	t.Run("job is parked after the last attempt", func(t *testing.T) {
		f := newRelayFixture(t)
		j := job("bid.created", 2)
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shared.NotificationJob{j}, nil).Times(1)
		f.dispatcher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("no route")).Times(1)
		f.notifications.EXPECT().
			Reschedule(gomock.Any(), gomock.Any(), j.ID, shared.JobStatusFailed, "no route", relayNow).
			Return(nil).Times(1)

		stats, err := f.relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, worker.RelayStats{Claimed: 1, Failed: 1}, stats)
	})

	t.Run("storage failure aborts the batch", func(t *testing.T) {
		f := newRelayFixture(t)
		dbErr := errors.New("deadlock detected")
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr).Times(1)

		stats, err := f.relay.RunOnce(context.Background())

		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, worker.RelayStats{}, stats)
	})

	t.Run("publishes outside any transaction with a deadline", func(t *testing.T) {
		f := newRelayFixture(t)
		j := job("bid.accepted", 0)
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shared.NotificationJob{j}, nil).Times(1)
		f.dispatcher.EXPECT().Publish(gomock.Any(), j.EventType, j.RequestID, j.Payload).
			DoAndReturn(func(ctx context.Context, _ string, _ uuid.UUID, _ []byte) error {
				assert.False(t, f.inTx, "publish must not run inside the claim transaction")
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return nil
			}).Times(1)
		f.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), j.ID).Return(nil).Times(1)

		stats, err := f.relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, worker.RelayStats{Claimed: 1, Sent: 1}, stats)
		assert.Equal(t, 2, f.transactions)
	})

	t.Run("failure to record a sent job stops the batch and leaves the rest leased", func(t *testing.T) {
		f := newRelayFixture(t)
		first, second := job("bid.created", 0), job("bid.created", 0)
		dbErr := errors.New("connection reset")
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]shared.NotificationJob{first, second}, nil).Times(1)
		f.dispatcher.EXPECT().Publish(gomock.Any(), first.EventType, first.RequestID, first.Payload).Return(nil).Times(1)
		f.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), first.ID).Return(dbErr).Times(1)

		stats, err := f.relay.RunOnce(context.Background())

		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, worker.RelayStats{Claimed: 2}, stats)
	})
}

func TestRelay_PurgeExpiredKeys(t *testing.T) {
	f := newRelayFixture(t)
	f.idempotency.EXPECT().DeleteExpired(gomock.Any(), gomock.Any(), relayNow).Return(int64(4), nil).Times(1)

	n, err := f.relay.PurgeExpiredKeys(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
