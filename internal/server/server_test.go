package server

import (
	"testing"

	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/handler"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)
	s := srv.(*server)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.server.Addr)
	assert.NotNil(t, s.httpServer.server.Handler)
}

func TestNewServer_NothingToServe(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{name: "nil handlers", handlers: nil, cfg: config.Server{HTTPAddress: ":3000"}},
		{name: "no http handler", handlers: &handler.Handlers{}, cfg: config.Server{HTTPAddress: ":3000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			require.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, srv)
		})
	}
}

func TestShutdown_BeforeRun(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, srv.Shutdown)
}
