package bootstrap

import (
	"context"
	"log/slog"

	"styleapp-backend/internal/infra/mq"
	"styleapp-backend/internal/pkg/config"
	"styleapp-backend/internal/worker"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewDispatcher,
	),
)

type closableDispatcher interface {
	worker.Dispatcher
	Close() error
}

// NewDispatcher publishes to RabbitMQ when RABBITMQ_URL is set and only logs
// events otherwise.
func NewDispatcher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (worker.Dispatcher, error) {
	var d closableDispatcher
	if cfg.MQ.URL == "" {
		logger.Info("RABBITMQ_URL not set; events are logged only")
		d = mq.NewLogDispatcher(logger)
	} else {
		pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			return nil, err
		}
		logger.Info("Publishing events to RabbitMQ", "exchange", cfg.MQ.Exchange)
		d = pub
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return d.Close()
		},
	})
	return d, nil
}
