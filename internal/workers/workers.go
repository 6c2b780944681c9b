package workers

import (
	"context"
	"sync"
	"time"
)

type Workers struct {
	mu      sync.Mutex
	workers []Worker
	running bool
}

// New groups workers. They are started in the given order.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts every worker. Calling it on a running group does nothing.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return
	}
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	w.running = true
}

// Stop stops every worker in reverse start order. Calling it on a stopped
// group does nothing.
func (w *Workers) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.running = false
}

type intervalWorker struct {
	job      IntervalJob
	interval time.Duration
}

// Every adapts job into a Worker started with interval.
func Every(job IntervalJob, interval time.Duration) Worker {
	return &intervalWorker{job: job, interval: interval}
}

func (w *intervalWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *intervalWorker) Stop() {
	w.job.Stop()
}
