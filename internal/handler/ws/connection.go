package ws

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/models"
	"golang.org/x/time/rate"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	sendQueueSize = 64
	writeTimeout  = 5 * time.Second
)

// connection is one client channel. Outbound frames go through sendCh and
// are written by writeLoop, so responses and pushes never interleave on the
// wire.
type connection struct {
	id      string
	ws      *websocket.Conn
	logger  *logger.Logger
	limiter *rate.Limiter

	sendCh    chan models.Response
	done      chan struct{}
	closeOnce sync.Once

	mu       sync.RWMutex
	userGUID string
}

func newConnection(id string, ws *websocket.Conn, limiter *rate.Limiter, log *logger.Logger) *connection {
	return &connection{
		id:      id,
		ws:      ws,
		logger:  log.WithConnection(id),
		limiter: limiter,
		sendCh:  make(chan models.Response, sendQueueSize),
		done:    make(chan struct{}),
	}
}

// UserGUID returns the user the connection is signed in as, or "".
func (c *connection) UserGUID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userGUID
}

func (c *connection) signIn(userGUID string) {
	c.mu.Lock()
	c.userGUID = userGUID
	c.mu.Unlock()
}

func (c *connection) signOut() {
	c.mu.Lock()
	c.userGUID = ""
	c.mu.Unlock()
}

// allow reports whether the rate limiter admits one more request.
func (c *connection) allow() bool {
	return c.limiter == nil || c.limiter.Allow()
}

// enqueue queues resp for writing. A closed connection or a full queue drops
// the frame.
func (c *connection) enqueue(resp models.Response) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.sendCh <- resp:
		return true
	default:
		c.logger.Warn().Str("api", resp.API).Int64("message_id", resp.MessageID).Msg("send queue full, frame dropped")
		return false
	}
}

func (c *connection) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case resp := <-c.sendCh:
			ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := wsjson.Write(ctx, c.ws, resp)
			cancel()
			if err != nil {
				c.logger.Debug().Err(err).Msg("write failed")
				c.close()
				return
			}
		}
	}
}

func (c *connection) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *connection) closeGoingAway(reason string) {
	c.close()
	if c.ws != nil {
		c.ws.Close(websocket.StatusGoingAway, reason)
	}
}
