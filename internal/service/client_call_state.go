// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-profile-hub/internal/app"
	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/models"
)

const defaultResetDelay = time.Second

// CallState is the lifecycle of the calls sharing one ticket. At most one of
// Success and Error is set; the zero value is idle.
type CallState struct {
	Processing bool `json:"processing"`
	Success    bool `json:"success"`
	Error      bool `json:"error"`
}

// Idle reports whether no call is running or showing its result.
func (s CallState) Idle() bool {
	return s == CallState{}
}

// Snapshot is a copy of every ticket state taken at one moment. It is never
// modified after it is handed out.
type Snapshot map[string]CallState

// State returns the state of ticket. Unknown tickets are idle.
func (s Snapshot) State(ticket string) CallState {
	return s[ticket]
}

// CallTracker owns the call state of every ticket in the client.
type CallTracker struct {
	resetDelay time.Duration
	logger     *logger.Logger

	mu     sync.RWMutex
	states map[string]CallState

	// notifyMu keeps observers seeing snapshots in merge order.
	notifyMu  sync.Mutex
	obsMu     sync.Mutex
	observers map[int]func(Snapshot)
	nextObs   int
}

// NewCallTracker returns a tracker resetting tickets to idle after
// cfg.ResetDelay, or one second when unset.
func NewCallTracker(cfg config.ClientCalls, log *logger.Logger) *CallTracker {
	resetDelay := cfg.ResetDelay
	if resetDelay <= 0 {
		resetDelay = defaultResetDelay
	}
	return &CallTracker{
		resetDelay: resetDelay,
		logger:     log,
		states:     make(map[string]CallState),
		observers:  make(map[int]func(Snapshot)),
	}
}

// State returns the current state of ticket.
func (t *CallTracker) State(ticket string) CallState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.states[ticket]
}

// Snapshot returns a copy of all ticket states.
func (t *CallTracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every state change and
// returns a function removing it. fn must not start tracked calls
// synchronously.
func (t *CallTracker) Subscribe(fn func(Snapshot)) func() {
	t.obsMu.Lock()
	id := t.nextObs
	t.nextObs++
	t.observers[id] = fn
	t.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.obsMu.Lock()
			delete(t.observers, id)
			t.obsMu.Unlock()
		})
	}
}

// merge replaces the state of one ticket, leaving all others untouched, and
// notifies observers.
func (t *CallTracker) merge(ticket string, state CallState) {
	t.notifyMu.Lock()
	defer t.notifyMu.Unlock()

	t.mu.Lock()
	if state.Idle() {
		delete(t.states, ticket)
	} else {
		t.states[ticket] = state
	}
	snap := t.snapshotLocked()
	t.mu.Unlock()

	for _, fn := range t.observerList() {
		fn(snap)
	}
}

func (t *CallTracker) snapshotLocked() Snapshot {
	snap := make(Snapshot, len(t.states))
	for k, v := range t.states {
		snap[k] = v
	}
	return snap
}

func (t *CallTracker) observerList() []func(Snapshot) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()

	ids := make([]int, 0, len(t.observers))
	for id := range t.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	fns := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, t.observers[id])
	}
	return fns
}

// KeyFunc derives the ticket of a call from its parameters.
type KeyFunc[P any] func(params P) string

// StaticTicket returns a KeyFunc giving every call the same ticket.
func StaticTicket[P any](ticket string) KeyFunc[P] {
	return func(P) string { return ticket }
}

// FieldTicket returns a KeyFunc giving each edited field its own ticket,
// e.g. "User.editProfile.name.first".
func FieldTicket(prefix string) KeyFunc[models.EditProfileData] {
	return func(p models.EditProfileData) string {
		return prefix + "." + p.Field
	}
}

// RemoteOp sends one request and reports the outcome through handlers.
// Returning an error means the request never left; no handler will run.
type RemoteOp[P any] func(ctx context.Context, params P, handlers models.ChangeHandlers) error

// TrackedCall is a RemoteOp wrapped by WrapCall.
type TrackedCall[P any] func(ctx context.Context, params P, handlers models.ChangeHandlers) *CallFuture

// CallConfig configures WrapCall.
type CallConfig[P any] struct {
	// Name identifies the call in logs and is the ticket when Ticket is nil
	// or yields "".
	Name string
	// Ticket derives the ticket from the call parameters.
	Ticket KeyFunc[P]
	// Succeeded classifies a response delivered to the success callback.
	// Defaults to ResponseSucceeded.
	Succeeded func(models.Response) bool
	// StartDelay postpones the remote op after the ticket turns processing.
	StartDelay time.Duration
	// Timeout forces the error path when no response arrives in time. Zero
	// waits forever.
	Timeout time.Duration
}

// ResponseSucceeded is the default success predicate: any category other
// than ERROR.
func ResponseSucceeded(resp models.Response) bool {
	return resp.Category != models.CategoryError
}

// Outcome is how a tracked call ended.
type Outcome int

const (
	OutcomeSuccess Outcome = iota + 1
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeError:
		return "error"
	default:
		return "pending"
	}
}

// CallResult is the resolved value of a [CallFuture].
type CallResult struct {
	Ticket   string
	Response models.Response
	Changes  models.Changes
	Outcome  Outcome
}

// OK reports whether the call succeeded.
func (r CallResult) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// CallFuture resolves with the first response of a tracked call. Settled is
// closed later, once the ticket went back to idle and Finally ran.
type CallFuture struct {
	ticket  string
	done    chan struct{}
	settled chan struct{}
	result  CallResult
}

func newCallFuture(ticket string) *CallFuture {
	return &CallFuture{
		ticket:  ticket,
		done:    make(chan struct{}),
		settled: make(chan struct{}),
	}
}

// Ticket returns the ticket the call is tracked under.
func (f *CallFuture) Ticket() string { return f.ticket }

// Done is closed when the result is available.
func (f *CallFuture) Done() <-chan struct{} { return f.done }

// Settled is closed after the reset delay, once Finally returned.
func (f *CallFuture) Settled() <-chan struct{} { return f.settled }

// Result returns the result without blocking. ok is false while pending.
func (f *CallFuture) Result() (CallResult, bool) {
	select {
	case <-f.done:
		return f.result, true
	default:
		return CallResult{}, false
	}
}

// Wait blocks until the call resolves or ctx ends.
func (f *CallFuture) Wait(ctx context.Context) (CallResult, error) {
	select {
	case <-f.done:
		return f.result, nil
	case <-ctx.Done():
		return CallResult{}, ctx.Err()
	}
}

func (f *CallFuture) resolve(r CallResult) {
	f.result = r
	close(f.done)
}

// WrapCall returns op wrapped with call state tracking on t.
//
// Invoking the result marks the ticket processing and runs op. The first
// response moves the ticket to success or error, resolves the future and
// runs the caller's Success or Error. After the tracker's reset delay the
// ticket goes idle and Finally runs. Later responses for the same call are
// ignored.
func WrapCall[P any](t *CallTracker, cfg CallConfig[P], op RemoteOp[P]) TrackedCall[P] {
	succeeded := cfg.Succeeded
	if succeeded == nil {
		succeeded = ResponseSucceeded
	}

	return func(ctx context.Context, params P, h models.ChangeHandlers) *CallFuture {
		ticket := ""
		if cfg.Ticket != nil {
			ticket = cfg.Ticket(params)
		}
		if ticket == "" {
			ticket = cfg.Name
		}

		log := t.logger.With().Str("call", cfg.Name).Str("ticket", ticket).Logger()
		future := newCallFuture(ticket)
		t.merge(ticket, CallState{Processing: true})

		var once sync.Once
		finish := func(resp models.Response, changes models.Changes, outcome Outcome) {
			once.Do(func() {
				if outcome == OutcomeSuccess {
					t.merge(ticket, CallState{Success: true})
				} else {
					t.merge(ticket, CallState{Error: true})
				}

				future.resolve(CallResult{Ticket: ticket, Response: resp, Changes: changes, Outcome: outcome})

				switch {
				case outcome == OutcomeSuccess && h.Success != nil:
					h.Success(resp, changes)
				case outcome == OutcomeError && h.Error != nil:
					h.Error(resp, changes)
				}

				time.AfterFunc(t.resetDelay, func() {
					t.merge(ticket, CallState{})
					if h.Finally != nil {
						h.Finally(resp)
					}
					close(future.settled)
				})
			})
		}

		handlers := models.ChangeHandlers{
			Success: func(resp models.Response, changes models.Changes) {
				if succeeded(resp) {
					finish(resp, changes, OutcomeSuccess)
					return
				}
				finish(resp, changes, OutcomeError)
			},
			Error: func(resp models.Response, changes models.Changes) {
				finish(resp, changes, OutcomeError)
			},
		}

		if cfg.Timeout > 0 {
			go func() {
				timer := time.NewTimer(cfg.Timeout)
				defer timer.Stop()
				select {
				case <-timer.C:
					log.Warn().Dur("timeout", cfg.Timeout).Msg("call timed out")
					finish(timeoutResponse(), nil, OutcomeError)
				case <-future.done:
				}
			}()
		}

		start := func() {
			if err := op(ctx, params, handlers); err != nil {
				// the request was dropped; the ticket stays processing
				log.Warn().Err(err).Msg("remote call not sent")
			}
		}
		if cfg.StartDelay > 0 {
			time.AfterFunc(cfg.StartDelay, start)
		} else {
			start()
		}

		return future
	}
}

func timeoutResponse() models.Response {
	return models.Response{
		Success:  false,
		Category: models.CategoryError,
		Error:    app.MsgRequestTimedOut,
	}
}
