package workers

import (
	"context"
	"time"

	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/service"
)

// retentionSweepWorker periodically removes contact messages older than the
// configured retention window. It runs for the lifetime of the process.
type retentionSweepWorker struct {
	contactService service.ContactService
	interval       time.Duration
	logger         *logger.Logger
}

func newRetentionSweepWorker(contactService service.ContactService, interval time.Duration, logger *logger.Logger) *retentionSweepWorker {
	return &retentionSweepWorker{
		contactService: contactService,
		interval:       interval,
		logger:         logger,
	}
}

// Run starts the sweep loop in a background goroutine and returns
// immediately. Each tick performs one sweep; a failed sweep is logged and
// retried on the next tick.
func (w *retentionSweepWorker) Run() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			w.sweep()
		}
	}()
}

func (w *retentionSweepWorker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	removed, err := w.contactService.SweepMessages(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("contact message sweep failed")
		return
	}

	if removed > 0 {
		w.logger.Info().Int64("removed", removed).Msg("swept expired contact messages")
	}
}
