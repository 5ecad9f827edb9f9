package workers

import (
	"context"
	"time"

	"github.com/gitstandup/gitstandup/internal/services"
	"github.com/gitstandup/gitstandup/pkg/logger"
)

// RetentionWorker periodically prunes report history older than the
// configured retention window
type RetentionWorker struct {
	*BaseWorker
	historyService *services.ReportHistoryService
	retentionDays  int
	interval       time.Duration
}

// NewRetentionWorker creates a new retention worker
func NewRetentionWorker(workerID string, historyService *services.ReportHistoryService, retentionDays int, interval time.Duration) *RetentionWorker {
	return &RetentionWorker{
		BaseWorker:     NewBaseWorker(workerID),
		historyService: historyService,
		retentionDays:  retentionDays,
		interval:       interval,
	}
}

// Start begins the retention worker process
func (w *RetentionWorker) Start(ctx context.Context) error {
	w.Running = true
	logger.Infof("Retention worker %s started", w.WorkerID)

	w.prune()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Infof("Retention worker %s stopping due to context cancellation", w.WorkerID)
			return ctx.Err()
		case <-w.StopChan:
			logger.Infof("Retention worker %s stopping", w.WorkerID)
			return nil
		case <-ticker.C:
			w.prune()
		}
	}
}

func (w *RetentionWorker) prune() {
	deleted, err := w.historyService.PruneOlderThan(w.retentionDays)
	if err != nil {
		logger.WithError(err).Warnf("Retention worker %s failed to prune report history", w.WorkerID)
		return
	}
	if deleted > 0 {
		logger.Infof("Retention worker %s pruned %d reports", w.WorkerID, deleted)
	}
}
