// Package workers runs the client's background jobs as one group.
//
// A [Worker] is started with a context and stopped explicitly. [Workers]
// starts its members in order and stops them in reverse order, so a job may
// rely on the ones registered before it.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: long running work belongs in a goroutine owned by
// the worker. Stop blocks until that goroutine has exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// IntervalJob is a job that takes its period when started, such as the
// client heartbeat.
type IntervalJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
