package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	purgeSchedule = "@hourly"
	jobTimeout    = time.Minute
)

// Scheduler runs the relay and the idempotency purge on cron schedules.
type Scheduler struct {
	cron   *cron.Cron
	relay  *Relay
	logger *slog.Logger
}

func NewScheduler(relay *Relay, relaySchedule string, logger *slog.Logger) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	s := &Scheduler{
		cron:   c,
		relay:  relay,
		logger: logger,
	}

	if _, err := s.cron.AddFunc(relaySchedule, s.relayOutbox); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc(purgeSchedule, s.purgeKeys); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) relayOutbox() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.relay.RunOnce(ctx); err != nil {
		s.logger.Error("Outbox relay failed", "error", err.Error())
	}
}

func (s *Scheduler) purgeKeys() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.relay.PurgeExpiredKeys(ctx); err != nil {
		s.logger.Error("Idempotency key purge failed", "error", err.Error())
	}
}

func (s *Scheduler) Start() {
	s.logger.Info("Starting outbox scheduler", "jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Outbox scheduler stopped")
}
