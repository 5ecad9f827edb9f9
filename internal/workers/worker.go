package workers

import (
	"context"
)

// Worker interface defines the contract for background workers
type Worker interface {
	// Start begins the worker process
	Start(ctx context.Context) error

	// Stop gracefully stops the worker
	Stop() error

	// GetWorkerID returns the unique identifier for this worker
	GetWorkerID() string
}

// BaseWorker provides common functionality for all workers
type BaseWorker struct {
	WorkerID string
	Running  bool
	StopChan chan struct{}
}

// NewBaseWorker creates a new base worker
func NewBaseWorker(workerID string) *BaseWorker {
	return &BaseWorker{
		WorkerID: workerID,
		Running:  false,
		StopChan: make(chan struct{}),
	}
}

// GetWorkerID returns the worker's unique identifier
func (w *BaseWorker) GetWorkerID() string {
	return w.WorkerID
}

// Stop gracefully stops the worker
func (w *BaseWorker) Stop() error {
	if w.Running {
		w.Running = false
		close(w.StopChan)
	}
	return nil
}

// IsRunning checks if the worker is currently running
func (w *BaseWorker) IsRunning() bool {
	return w.Running
}
