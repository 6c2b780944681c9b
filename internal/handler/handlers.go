package handler

import (
	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/handler/http"
	"github.com/MKhiriev/go-profile-hub/internal/handler/ws"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	WS   *ws.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	wsHandler := ws.NewHandler(services, cfg, logger)
	return &Handlers{
		HTTP: http.NewHandler(services, wsHandler, logger),
		WS:   wsHandler,
	}, nil
}
