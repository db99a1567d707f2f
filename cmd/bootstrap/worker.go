package bootstrap

import (
	"context"
	"log/slog"

	"styleapp-backend/internal/pkg/clock"
	"styleapp-backend/internal/pkg/config"
	"styleapp-backend/internal/usecase/shared"
	"styleapp-backend/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewRelay,
		NewScheduler,
	),
	fx.Invoke(func(*worker.Scheduler) {}),
)

func NewRelay(uow shared.UnitOfWork, dispatcher worker.Dispatcher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *worker.Relay {
	return worker.NewRelay(uow, dispatcher, clk, worker.RelayConfig{
		BatchSize:      cfg.Outbox.BatchSize,
		MaxAttempts:    cfg.Outbox.MaxAttempts,
		RetryDelay:     cfg.Outbox.RetryDelay,
		Lease:          cfg.Outbox.Lease,
		PublishTimeout: cfg.Outbox.PublishTimeout,
	}, logger)
}

func NewScheduler(lc fx.Lifecycle, relay *worker.Relay, cfg config.Config, logger *slog.Logger) (*worker.Scheduler, error) {
	s, err := worker.NewScheduler(relay, cfg.Outbox.Schedule, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
	return s, nil
}
