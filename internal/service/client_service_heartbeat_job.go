package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-profile-hub/internal/adapter"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
)

const defaultHeartbeatInterval = 30 * time.Second

type clientHeartbeatJob struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientHeartbeatJob creates a job that pings the server on a ticker. A
// ping on a dropped connection schedules the reconnect. The job is idle until
// Start is called.
func NewClientHeartbeatJob(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientHeartbeatJob {
	return &clientHeartbeatJob{adapter: serverAdapter, logger: logger}
}

// Start implements ClientHeartbeatJob. It stops any previously running job,
// then launches a background goroutine that pings every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *clientHeartbeatJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultHeartbeatInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.adapter.Ping(); err != nil {
					j.logger.Debug().Err(err).Msg("heartbeat ping not sent")
				}
			}
		}
	}()
}

// Stop implements ClientHeartbeatJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientHeartbeatJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
