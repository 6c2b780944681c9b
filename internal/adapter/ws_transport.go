package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/models"
)

const (
	transportReadLimit    = 1 << 20
	transportWriteTimeout = 5 * time.Second
)

type connState int

const (
	stateClosed connState = iota
	stateConnecting
	stateOpen
	stateClosing
)

// WSTransport owns at most one WebSocket connection to the server.
//
// There is no send queue: a message sent while the connection is not open is
// dropped and a reconnect is scheduled. Callback slots hold a single function
// each; setting one replaces the previous. Callbacks may run on the read
// goroutine or a timer goroutine.
type WSTransport struct {
	url            string
	dialTimeout    time.Duration
	sendRetryDelay time.Duration
	reconnectDelay time.Duration
	autoReconnect  bool

	route  func(models.Response)
	logger *logger.Logger

	mu             sync.Mutex
	state          connState
	conn           *websocket.Conn
	reconnectTimer *time.Timer
	userClosed     bool
	shutdown       bool

	cbMu      sync.RWMutex
	onOpen    func()
	onClose   func(err error)
	onMessage func(data []byte)
	onError   func(err error)
}

// NewWSTransport returns a closed transport. Frames carrying an api name are
// passed to route.
func NewWSTransport(cfg config.ClientAdapter, route func(models.Response), log *logger.Logger) *WSTransport {
	return &WSTransport{
		url:            cfg.WSURL,
		dialTimeout:    cfg.RequestTimeout,
		sendRetryDelay: cfg.SendRetryDelay,
		reconnectDelay: cfg.ReconnectDelay,
		autoReconnect:  cfg.AutoReconnect,
		route:          route,
		logger:         log,
	}
}

func (t *WSTransport) SetOnOpen(fn func()) {
	t.cbMu.Lock()
	t.onOpen = fn
	t.cbMu.Unlock()
}

func (t *WSTransport) SetOnClose(fn func(err error)) {
	t.cbMu.Lock()
	t.onClose = fn
	t.cbMu.Unlock()
}

func (t *WSTransport) SetOnMessage(fn func(data []byte)) {
	t.cbMu.Lock()
	t.onMessage = fn
	t.cbMu.Unlock()
}

func (t *WSTransport) SetOnError(fn func(err error)) {
	t.cbMu.Lock()
	t.onError = fn
	t.cbMu.Unlock()
}

// Connected reports whether the connection is open.
func (t *WSTransport) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == stateOpen
}

// Connect starts dialing unless a connection is already open or being
// opened. It returns immediately; the open callback reports success.
func (t *WSTransport) Connect() {
	t.mu.Lock()
	if t.shutdown || t.state == stateOpen || t.state == stateConnecting {
		t.mu.Unlock()
		return
	}
	t.state = stateConnecting
	t.userClosed = false
	t.mu.Unlock()

	t.logger.Debug().Str("url", t.url).Msg("connecting websocket")
	go t.dial()
}

// Disconnect closes the connection unless it is already closing or closed.
// A connection closed this way is not re-established automatically.
func (t *WSTransport) Disconnect() {
	t.mu.Lock()
	switch t.state {
	case stateClosed, stateClosing:
		t.mu.Unlock()
		return
	case stateConnecting:
		// dial checks userClosed before publishing the connection
		t.userClosed = true
		t.mu.Unlock()
		return
	}
	t.userClosed = true
	t.state = stateClosing
	conn := t.conn
	t.mu.Unlock()

	if err := conn.Close(websocket.StatusNormalClosure, ""); err != nil {
		t.logger.Debug().Err(err).Msg("websocket close")
	}
}

// Shutdown cancels pending reconnects and closes the connection. The
// transport cannot be used afterwards.
func (t *WSTransport) Shutdown() {
	t.mu.Lock()
	t.shutdown = true
	if t.reconnectTimer != nil {
		t.reconnectTimer.Stop()
		t.reconnectTimer = nil
	}
	t.mu.Unlock()

	t.Disconnect()
}

// Send writes v as one JSON text frame. When the connection is not open the
// message is dropped, [ErrNotConnected] is returned and, unless a connection
// attempt is already running, a reconnect is scheduled after the send retry
// delay.
func (t *WSTransport) Send(v any) error {
	t.mu.Lock()
	state, conn := t.state, t.conn
	t.mu.Unlock()

	if state != stateOpen || conn == nil {
		if state == stateClosed || state == stateClosing {
			t.scheduleReconnect(t.sendRetryDelay)
		}
		return ErrNotConnected
	}

	ctx, cancel := context.WithTimeout(context.Background(), transportWriteTimeout)
	defer cancel()

	if err := wsjson.Write(ctx, conn, v); err != nil {
		return fmt.Errorf("websocket write: %w", err)
	}
	return nil
}

func (t *WSTransport) dial() {
	ctx, cancel := context.WithTimeout(context.Background(), t.dialTimeout)
	conn, _, err := websocket.Dial(ctx, t.url, nil)
	cancel()

	if err != nil {
		t.logger.Warn().Err(err).Str("url", t.url).Msg("websocket dial failed")

		t.mu.Lock()
		t.state = stateClosed
		reconnect := !t.userClosed
		t.mu.Unlock()

		t.emitError(err)
		t.emitClose(err)
		if reconnect {
			t.reconnectLater()
		}
		return
	}
	conn.SetReadLimit(transportReadLimit)

	t.mu.Lock()
	if t.userClosed || t.shutdown {
		t.state = stateClosed
		t.mu.Unlock()
		conn.Close(websocket.StatusNormalClosure, "")
		return
	}
	t.conn = conn
	t.state = stateOpen
	t.mu.Unlock()

	t.logger.Info().Str("url", t.url).Msg("websocket connected")
	go t.readLoop(conn)
	t.emitOpen()
}

func (t *WSTransport) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.Read(context.Background())
		if err != nil {
			t.closed(conn, err)
			return
		}
		t.handleFrame(data)
	}
}

func (t *WSTransport) handleFrame(data []byte) {
	t.cbMu.RLock()
	onMessage := t.onMessage
	t.cbMu.RUnlock()
	if onMessage != nil {
		onMessage(data)
	}

	var resp models.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		t.logger.Warn().Err(err).Msg("failed to parse server message")
		return
	}
	if resp.API == "" || t.route == nil {
		return
	}
	t.route(resp)
}

// closed is called by the read loop once conn is gone.
func (t *WSTransport) closed(conn *websocket.Conn, err error) {
	t.mu.Lock()
	if t.conn != conn {
		t.mu.Unlock()
		return
	}
	t.conn = nil
	t.state = stateClosed
	expected := t.userClosed || t.shutdown
	t.mu.Unlock()

	status := websocket.CloseStatus(err)
	t.logger.Info().Int("status", int(status)).Bool("expected", expected).Msg("websocket closed")

	if !expected && status == -1 {
		t.emitError(err)
	}
	t.emitClose(err)
	if !expected {
		t.reconnectLater()
	}
}

func (t *WSTransport) reconnectLater() {
	if !t.autoReconnect {
		return
	}
	t.scheduleReconnect(t.reconnectDelay)
}

// scheduleReconnect arms a single reconnect timer. While one is pending,
// further requests are ignored.
func (t *WSTransport) scheduleReconnect(delay time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.shutdown || t.reconnectTimer != nil {
		return
	}
	t.logger.Debug().Dur("delay", delay).Msg("websocket reconnect scheduled")
	t.reconnectTimer = time.AfterFunc(delay, func() {
		t.mu.Lock()
		t.reconnectTimer = nil
		t.mu.Unlock()
		t.Connect()
	})
}

func (t *WSTransport) emitOpen() {
	t.cbMu.RLock()
	fn := t.onOpen
	t.cbMu.RUnlock()
	if fn != nil {
		fn()
	}
}

func (t *WSTransport) emitClose(err error) {
	t.cbMu.RLock()
	fn := t.onClose
	t.cbMu.RUnlock()
	if fn != nil {
		fn(err)
	}
}

func (t *WSTransport) emitError(err error) {
	t.cbMu.RLock()
	fn := t.onError
	t.cbMu.RUnlock()
	if fn != nil {
		fn(err)
	}
}
