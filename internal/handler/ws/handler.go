package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/service"
	"github.com/MKhiriev/go-profile-hub/internal/utils"
	"github.com/MKhiriev/go-profile-hub/internal/validators"
	"github.com/MKhiriev/go-profile-hub/models"
	"golang.org/x/time/rate"
	"nhooyr.io/websocket"
)

// apiHandler serves one api. The returned response gets api and messageId
// filled in by the dispatcher.
type apiHandler func(ctx context.Context, c *connection, data json.RawMessage) models.Response

// Handler upgrades HTTP requests to WebSocket connections and serves the
// request/response protocol on them.
type Handler struct {
	services  *service.Services
	validator validators.Validator
	hub       *Hub
	routes    map[string]apiHandler
	cfg       config.Server
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("websocket handler created")

	h := &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		hub:       NewHub(),
		cfg:       cfg,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
	h.routes = h.apiRoutes()
	return h
}

// ServeHTTP accepts the upgrade and blocks until the connection ends.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.cfg.AllowedOrigins,
	})
	if err != nil {
		log.Err(err).Msg("websocket accept failed")
		return
	}
	if h.cfg.ReadLimit > 0 {
		wsConn.SetReadLimit(h.cfg.ReadLimit)
	}

	c := newConnection(h.ids.Generate(), wsConn, h.newLimiter(), log)
	h.hub.register(c)
	c.logger.Info().Int("connections", h.hub.Count()).Msg("client connected")

	go c.writeLoop()
	h.readLoop(r.Context(), c)

	h.hub.unregister(c)
	c.close()
	wsConn.Close(websocket.StatusNormalClosure, "")
	c.logger.Info().Int("connections", h.hub.Count()).Msg("client disconnected")
}

// Connections returns the number of open connections.
func (h *Handler) Connections() int {
	return h.hub.Count()
}

// Shutdown closes every open connection.
func (h *Handler) Shutdown() {
	h.hub.CloseAll("server shutting down")
}

func (h *Handler) readLoop(ctx context.Context, c *connection) {
	for {
		_, frame, err := c.ws.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway || errors.Is(err, context.Canceled) {
				c.logger.Debug().Msg("connection closed by peer")
			} else {
				c.logger.Warn().Err(err).Msg("read failed")
			}
			return
		}

		c.enqueue(h.handleFrame(ctx, c, frame))
	}
}

func (h *Handler) newLimiter() *rate.Limiter {
	if h.cfg.MessageRate <= 0 {
		return nil
	}

	burst := h.cfg.MessageBurst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(h.cfg.MessageRate), burst)
}
