package ws

import (
	"sync"

	"github.com/MKhiriev/go-profile-hub/models"
)

// Hub tracks the open connections and the user each one is signed in as.
type Hub struct {
	mu    sync.RWMutex
	conns map[*connection]struct{}
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*connection]struct{})}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	delete(h.conns, c)
	h.mu.Unlock()
}

// Count returns the number of open connections.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// PushToUser queues resp on every connection signed in as userGUID except
// origin. It returns the number of connections the push was queued on.
func (h *Hub) PushToUser(userGUID string, origin *connection, resp models.Response) int {
	if userGUID == "" {
		return 0
	}

	pushed := 0
	for _, c := range h.userConnections(userGUID) {
		if c == origin {
			continue
		}
		if c.enqueue(resp) {
			pushed++
		}
	}
	return pushed
}

// SignOutUser drops the signed in user of every connection of userGUID.
func (h *Hub) SignOutUser(userGUID string) {
	for _, c := range h.userConnections(userGUID) {
		c.signOut()
	}
}

// CloseAll closes every connection with a going away status.
func (h *Hub) CloseAll(reason string) {
	h.mu.RLock()
	conns := make([]*connection, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		c.closeGoingAway(reason)
	}
}

func (h *Hub) userConnections(userGUID string) []*connection {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []*connection
	for c := range h.conns {
		if c.UserGUID() == userGUID {
			out = append(out, c)
		}
	}
	return out
}
