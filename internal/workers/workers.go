package workers

import (
	"github.com/benharosh/studio-cms/internal/config"
	"github.com/benharosh/studio-cms/internal/logger"
	"github.com/benharosh/studio-cms/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by the configuration.
// A zero sweep interval disables the message retention sweep.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	workers := &Workers{}

	if cfg.SweepInterval > 0 {
		workers.workers = append(workers.workers,
			newRetentionSweepWorker(services.ContactService, cfg.SweepInterval, logger))
	}

	return workers
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
