package adapter

import (
	"sort"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-profile-hub/models"
)

type registryEntry struct {
	handler models.ResponseHandler
	oneShot bool
}

// Registry maps api names to keyed response handlers.
//
// A response whose message id matches a registered key is delivered to that
// handler only; one-shot handlers are removed on that delivery. Any other
// response for the api is broadcast to all of its handlers in key order,
// without consuming one-shot entries.
type Registry struct {
	mu       sync.Mutex
	handlers map[string]map[string]registryEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]map[string]registryEntry)}
}

// MessageKey is the registry key for a message id.
func MessageKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// AddHandler registers a durable handler. An existing handler under the same
// api and key is replaced.
func (r *Registry) AddHandler(api, key string, handler models.ResponseHandler) {
	r.add(api, key, registryEntry{handler: handler})
}

// AddOneShotHandler registers a handler that is removed after it receives the
// response addressed to its key.
func (r *Registry) AddOneShotHandler(api, key string, handler models.ResponseHandler) {
	r.add(api, key, registryEntry{handler: handler, oneShot: true})
}

func (r *Registry) add(api, key string, e registryEntry) {
	if e.handler == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	byKey, ok := r.handlers[api]
	if !ok {
		byKey = make(map[string]registryEntry)
		r.handlers[api] = byKey
	}
	byKey[key] = e
}

// RemoveHandler deletes the handler under api and key, if any.
func (r *Registry) RemoveHandler(api, key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byKey, ok := r.handlers[api]
	if !ok {
		return
	}
	delete(byKey, key)
	if len(byKey) == 0 {
		delete(r.handlers, api)
	}
}

// Len reports how many handlers are registered for api.
func (r *Registry) Len(api string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers[api])
}

// Dispatch delivers resp to its handlers and reports how many ran. Handlers
// are invoked after the registry lock is released, so they may register or
// remove handlers themselves.
func (r *Registry) Dispatch(resp models.Response) int {
	targets := r.resolve(resp)
	for _, h := range targets {
		h(resp)
	}
	return len(targets)
}

func (r *Registry) resolve(resp models.Response) []models.ResponseHandler {
	r.mu.Lock()
	defer r.mu.Unlock()

	byKey, ok := r.handlers[resp.API]
	if !ok {
		return nil
	}

	if resp.MessageID != 0 {
		key := MessageKey(resp.MessageID)
		if e, ok := byKey[key]; ok {
			if e.oneShot {
				delete(byKey, key)
				if len(byKey) == 0 {
					delete(r.handlers, resp.API)
				}
			}
			return []models.ResponseHandler{e.handler}
		}
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.ResponseHandler, 0, len(keys))
	for _, k := range keys {
		out = append(out, byKey[k].handler)
	}
	return out
}
