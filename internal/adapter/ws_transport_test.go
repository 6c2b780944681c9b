package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 3 * time.Second

// testWSServer answers every request with the frames returned by respond and
// keeps the accepted connections so tests can push or drop them.
type testWSServer struct {
	*httptest.Server

	respond func(req models.Request) []any

	mu       sync.Mutex
	conns    []*websocket.Conn
	accepted chan struct{}
}

func newTestWSServer(t *testing.T, respond func(req models.Request) []any) *testWSServer {
	t.Helper()
	s := &testWSServer{respond: respond, accepted: make(chan struct{}, 16)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *testWSServer) wsURL() string {
	return "ws" + strings.TrimPrefix(s.Server.URL, "http") + "/ws"
}

func (s *testWSServer) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.conns = append(s.conns, conn)
	s.mu.Unlock()
	s.accepted <- struct{}{}

	ctx := r.Context()
	for {
		var req models.Request
		if err := wsjson.Read(ctx, conn, &req); err != nil {
			return
		}
		if s.respond == nil {
			continue
		}
		for _, frame := range s.respond(req) {
			if raw, ok := frame.(string); ok {
				_ = conn.Write(ctx, websocket.MessageText, []byte(raw))
				continue
			}
			_ = wsjson.Write(ctx, conn, frame)
		}
	}
}

func (s *testWSServer) last() *websocket.Conn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conns[len(s.conns)-1]
}

func (s *testWSServer) push(t *testing.T, frame any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	if raw, ok := frame.(string); ok {
		require.NoError(t, s.last().Write(ctx, websocket.MessageText, []byte(raw)))
		return
	}
	require.NoError(t, wsjson.Write(ctx, s.last(), frame))
}

func (s *testWSServer) dropLast() {
	s.last().Close(websocket.StatusGoingAway, "bye")
}

func testAdapterConfig(url string) config.ClientAdapter {
	return config.ClientAdapter{
		WSURL:          url,
		HTTPAddress:    "http://localhost",
		RequestTimeout: time.Second,
		SendRetryDelay: 20 * time.Millisecond,
		ReconnectDelay: 50 * time.Millisecond,
		AutoReconnect:  true,
	}
}

func newTestTransport(t *testing.T, cfg config.ClientAdapter, route func(models.Response)) (*WSTransport, chan struct{}, chan error) {
	t.Helper()
	tr := NewWSTransport(cfg, route, logger.Nop())
	opened := make(chan struct{}, 16)
	closed := make(chan error, 16)
	tr.SetOnOpen(func() { opened <- struct{}{} })
	tr.SetOnClose(func(err error) { closed <- err })
	t.Cleanup(tr.Shutdown)
	return tr, opened, closed
}

func waitFor[T any](t *testing.T, ch <-chan T, what string) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(waitTimeout):
		t.Fatalf("timed out waiting for %s", what)
	}
	var zero T
	return zero
}

func assertNothing[T any](t *testing.T, ch <-chan T, d time.Duration, what string) {
	t.Helper()
	select {
	case <-ch:
		t.Fatalf("unexpected %s", what)
	case <-time.After(d):
	}
}

func TestWSTransport_ConnectIsIdempotent(t *testing.T) {
	srv := newTestWSServer(t, nil)
	tr, opened, _ := newTestTransport(t, testAdapterConfig(srv.wsURL()), nil)

	tr.Connect()
	tr.Connect()
	waitFor(t, opened, "open")
	tr.Connect()

	assert.True(t, tr.Connected())
	waitFor(t, srv.accepted, "accept")
	assertNothing(t, srv.accepted, 100*time.Millisecond, "second connection")
}

func TestWSTransport_SendWhileClosedSchedulesReconnect(t *testing.T) {
	srv := newTestWSServer(t, nil)
	tr, opened, _ := newTestTransport(t, testAdapterConfig(srv.wsURL()), nil)

	err := tr.Send(models.Request{API: "ping", MessageID: 1})
	assert.ErrorIs(t, err, ErrNotConnected)

	waitFor(t, opened, "reconnect after send")
	assert.True(t, tr.Connected())
}

func TestWSTransport_RoutesFramesWithAPI(t *testing.T) {
	srv := newTestWSServer(t, func(req models.Request) []any {
		return []any{
			"{not json",
			map[string]any{"hello": "no api here"},
			models.Response{API: req.API, MessageID: req.MessageID, Success: true},
		}
	})

	routed := make(chan models.Response, 4)
	tr, opened, _ := newTestTransport(t, testAdapterConfig(srv.wsURL()), func(r models.Response) { routed <- r })

	var (
		mu  sync.Mutex
		raw [][]byte
	)
	tr.SetOnMessage(func(data []byte) {
		mu.Lock()
		raw = append(raw, data)
		mu.Unlock()
	})

	tr.Connect()
	waitFor(t, opened, "open")
	require.NoError(t, tr.Send(models.Request{API: "ping", MessageID: 5, Data: json.RawMessage(`{}`)}))

	resp := waitFor(t, routed, "routed response")
	assert.Equal(t, "ping", resp.API)
	assert.Equal(t, int64(5), resp.MessageID)
	assertNothing(t, routed, 50*time.Millisecond, "extra route")

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, raw, 3)
}

func TestWSTransport_ReconnectsAfterUnexpectedClose(t *testing.T) {
	srv := newTestWSServer(t, nil)
	tr, opened, closed := newTestTransport(t, testAdapterConfig(srv.wsURL()), nil)

	tr.Connect()
	waitFor(t, opened, "open")
	waitFor(t, srv.accepted, "accept")

	srv.dropLast()

	err := waitFor(t, closed, "close")
	assert.Equal(t, websocket.StatusGoingAway, websocket.CloseStatus(err))
	waitFor(t, opened, "reconnect")
	assert.True(t, tr.Connected())
}

func TestWSTransport_NoReconnectWhenDisabled(t *testing.T) {
	srv := newTestWSServer(t, nil)
	cfg := testAdapterConfig(srv.wsURL())
	cfg.AutoReconnect = false
	tr, opened, closed := newTestTransport(t, cfg, nil)

	tr.Connect()
	waitFor(t, opened, "open")
	waitFor(t, srv.accepted, "accept")

	srv.dropLast()
	waitFor(t, closed, "close")

	assertNothing(t, opened, 200*time.Millisecond, "reconnect")
	assert.False(t, tr.Connected())
}

func TestWSTransport_DisconnectDoesNotReconnect(t *testing.T) {
	srv := newTestWSServer(t, nil)
	tr, opened, closed := newTestTransport(t, testAdapterConfig(srv.wsURL()), nil)

	tr.Connect()
	waitFor(t, opened, "open")

	tr.Disconnect()
	tr.Disconnect()
	waitFor(t, closed, "close")

	assertNothing(t, opened, 200*time.Millisecond, "reconnect")
	assert.False(t, tr.Connected())
}

func TestWSTransport_DialFailureReportsErrorAndClose(t *testing.T) {
	srv := newTestWSServer(t, nil)
	url := srv.wsURL()
	srv.Close()

	cfg := testAdapterConfig(url)
	cfg.AutoReconnect = false
	tr, _, closed := newTestTransport(t, cfg, nil)

	errs := make(chan error, 4)
	tr.SetOnError(func(err error) { errs <- err })

	tr.Connect()

	assert.Error(t, waitFor(t, errs, "dial error"))
	assert.Error(t, waitFor(t, closed, "close"))
	assert.False(t, tr.Connected())
}

func TestWSTransport_CallbackSlotsReplace(t *testing.T) {
	srv := newTestWSServer(t, nil)
	tr := NewWSTransport(testAdapterConfig(srv.wsURL()), nil, logger.Nop())
	t.Cleanup(tr.Shutdown)

	first := make(chan struct{}, 1)
	second := make(chan struct{}, 1)
	tr.SetOnOpen(func() { first <- struct{}{} })
	tr.SetOnOpen(func() { second <- struct{}{} })

	tr.Connect()

	waitFor(t, second, "second open callback")
	assertNothing(t, first, 50*time.Millisecond, "replaced callback")
}

func TestWSTransport_ShutdownStopsReconnect(t *testing.T) {
	srv := newTestWSServer(t, nil)
	tr, opened, _ := newTestTransport(t, testAdapterConfig(srv.wsURL()), nil)

	assert.ErrorIs(t, tr.Send(models.Request{API: "ping"}), ErrNotConnected)
	tr.Shutdown()

	assertNothing(t, opened, 100*time.Millisecond, "open after shutdown")
	tr.Connect()
	assertNothing(t, opened, 50*time.Millisecond, "open after shutdown")
}
