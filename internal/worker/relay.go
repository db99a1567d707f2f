package worker

import (
	"context"
	"log/slog"
	"time"

	"styleapp-backend/internal/pkg/clock"
	"styleapp-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

// Dispatcher delivers one outbox event. Delivery may repeat; consumers
// deduplicate on the envelope.
type Dispatcher interface {
	Publish(ctx context.Context, eventType string, requestID uuid.UUID, payload []byte) error
}

type RelayConfig struct {
	BatchSize      int32
	MaxAttempts    int32
	RetryDelay     time.Duration
	Lease          time.Duration
	PublishTimeout time.Duration
}

type RelayStats struct {
	Claimed int
	Sent    int
	Retried int
	Failed  int
}

// Relay moves due outbox rows to the dispatcher. A claim leases rows for
// cfg.Lease in its own short transaction; publishing happens outside any
// transaction and each outcome is recorded separately. A relay that dies
// mid-batch leaves its rows to be claimed again once the lease runs out.
type Relay struct {
	uow        shared.UnitOfWork
	dispatcher Dispatcher
	clock      clock.Clock
	cfg        RelayConfig
	logger     *slog.Logger
}

func NewRelay(uow shared.UnitOfWork, dispatcher Dispatcher, clk clock.Clock, cfg RelayConfig, logger *slog.Logger) *Relay {
	return &Relay{
		uow:        uow,
		dispatcher: dispatcher,
		clock:      clk,
		cfg:        cfg,
		logger:     logger,
	}
}

func (r *Relay) RunOnce(ctx context.Context) (RelayStats, error) {
	jobs, err := r.claim(ctx)
	if err != nil {
		return RelayStats{}, err
	}

	stats := RelayStats{Claimed: len(jobs)}
	for _, job := range jobs {
		perr := r.publish(ctx, job)
		if perr == nil {
			if err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Notifications().MarkSent(ctx, tx.DB(), job.ID)
			}); err != nil {
				return stats, err
			}
			stats.Sent++
			continue
		}

		now := r.clock.Now()
		attempts := job.Attempts + 1
		status := shared.JobStatusQueued
		runAt := now.Add(r.backoff(attempts))
		if attempts >= r.cfg.MaxAttempts {
			status = shared.JobStatusFailed
			runAt = now
		}
		r.logger.Warn("Event dispatch failed",
			"job_id", job.ID.String(),
			"event_type", job.EventType,
			"attempts", attempts,
			"status", status,
			"error", perr.Error())

		if err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().Reschedule(ctx, tx.DB(), job.ID, status, perr.Error(), runAt)
		}); err != nil {
			return stats, err
		}
		if status == shared.JobStatusFailed {
			stats.Failed++
		} else {
			stats.Retried++
		}
	}

	if stats.Claimed > 0 {
		r.logger.Debug("Outbox batch relayed",
			"claimed", stats.Claimed,
			"sent", stats.Sent,
			"retried", stats.Retried,
			"failed", stats.Failed)
	}
	return stats, nil
}

func (r *Relay) claim(ctx context.Context) ([]shared.NotificationJob, error) {
	var jobs []shared.NotificationJob
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		claimed, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, now.Add(r.cfg.Lease), r.cfg.BatchSize)
		if err != nil {
			return err
		}
		jobs = claimed
		return nil
	})
	return jobs, err
}

func (r *Relay) publish(ctx context.Context, job shared.NotificationJob) error {
	if r.cfg.PublishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.PublishTimeout)
		defer cancel()
	}
	return r.dispatcher.Publish(ctx, job.EventType, job.RequestID, job.Payload)
}

// backoff grows linearly with the attempt number.
func (r *Relay) backoff(attempts int32) time.Duration {
	return time.Duration(attempts) * r.cfg.RetryDelay
}

// PurgeExpiredKeys drops idempotency keys past their expiry.
func (r *Relay) PurgeExpiredKeys(ctx context.Context) (int64, error) {
	var deleted int64
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, tx.DB(), r.clock.Now())
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		r.logger.Info("Expired idempotency keys purged", "deleted", deleted)
	}
	return deleted, nil
}
