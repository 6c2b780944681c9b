package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// WSURL is the WebSocket endpoint the transport channel dials.
	WSURL string
	// HTTPAddress is the base URL of the server HTTP API.
	HTTPAddress string
	// RequestTimeout bounds dial and HTTP requests.
	RequestTimeout time.Duration
	// SendRetryDelay is the reconnect wait after a send on a closed channel.
	SendRetryDelay time.Duration
	// ReconnectDelay is the reconnect wait after an unexpected close.
	ReconnectDelay time.Duration
	// AutoReconnect enables reconnection after drops.
	AutoReconnect bool
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientCalls holds call state tracking timings.
type ClientCalls struct {
	ResetDelay time.Duration
	StartDelay time.Duration
	Timeout    time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// HeartbeatInterval defines how often the client pings the server.
	HeartbeatInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Calls contains call state tracking timings.
	Calls ClientCalls
	// Workers contains background job settings.
	Workers ClientWorkers
	// LogFile is the client log destination.
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	return loadClientConfig(os.Args[1:])
}

func loadClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			WSURL:          cfg.Adapter.WSURL,
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			SendRetryDelay: cfg.Adapter.SendRetryDelay,
			ReconnectDelay: cfg.Adapter.ReconnectDelay,
			AutoReconnect:  !cfg.Adapter.DisableReconnect,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.Local.DSN,
			},
		},
		Calls: ClientCalls{
			ResetDelay: cfg.Calls.ResetDelay,
			StartDelay: cfg.Calls.StartDelay,
			Timeout:    cfg.Calls.Timeout,
		},
		Workers: ClientWorkers{HeartbeatInterval: cfg.Workers.HeartbeatInterval},
		LogFile: cfg.Storage.Local.LogFile,
	}
}
