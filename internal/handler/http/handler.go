package http

import (
	"net/http"

	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/service"
)

// WebSocketHandler serves the /ws endpoint and reports how many connections
// it holds.
type WebSocketHandler interface {
	http.Handler
	Connections() int
}

type Handler struct {
	services *service.Services
	ws       WebSocketHandler

	logger *logger.Logger
}

func NewHandler(services *service.Services, ws WebSocketHandler, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		ws:       ws,
		logger:   logger,
	}
}
