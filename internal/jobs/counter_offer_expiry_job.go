package jobs

import (
	"context"
	"log/slog"
	"time"

	"agritrade/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CounterOfferExpiryJob sweeps open counter-offers whose advisory deadline
// has passed. Runs every minute; expiry is observational, so minute
// granularity is enough.
type CounterOfferExpiryJob struct {
	handler commands.ExpireCounterOffersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCounterOfferExpiryJob creates the expiry sweep job.
func NewCounterOfferExpiryJob(
	handler commands.ExpireCounterOffersCommandHandler,
	logger *slog.Logger,
) *CounterOfferExpiryJob {
	return &CounterOfferExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "counter_offer_expiry_job"),
	}
}

// Start begins the expiry sweep, running every minute.
func (j *CounterOfferExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireCounterOffersCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Counter-offer expiry sweep could not be constructed", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			// Partial failures do not abort the sweep; the count below
			// still reflects what was expired this tick.
			j.logger.ErrorContext(ctx, "Counter-offer expiry sweep reported failures", "error", handleErr)
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired counter-offers", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Counter-offer expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry sweep.
func (j *CounterOfferExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Counter-offer expiry job stopped")
}
