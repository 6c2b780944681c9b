// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-profile-hub binaries. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the server user store and the client
	// local session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listening address and WebSocket endpoint limits.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Calls holds call state tracking timings.
	Calls Calls `envPrefix:"CALLS_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a session token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence settings of both binaries.
type Storage struct {
	// DB holds the optional PostgreSQL user store. When DSN is empty the
	// server keeps users in a JSON file instead.
	DB DB `envPrefix:"DB_"`

	// Files holds the JSON file store settings.
	Files Files `envPrefix:"FILES_"`

	// Local holds the client-side SQLite store.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the PostgreSQL user store.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the JSON user store.
type Files struct {
	// UsersFile is the JSON document holding the users array.
	// Env: STORAGE_FILES_USERS_FILE
	UsersFile string `env:"USERS_FILE"`
}

// Local holds the client's local database settings.
type Local struct {
	// DSN is the SQLite data source for the remembered session.
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`

	// LogFile is where the client writes its log. Empty puts a "logs" file
	// next to the executable.
	// Env: STORAGE_LOCAL_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// AllowedOrigins lists host patterns accepted for browser WebSocket
	// upgrades. Native clients send no Origin header and are always accepted.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// ReadLimit caps the size of one inbound frame in bytes.
	// Env: SERVER_READ_LIMIT
	ReadLimit int64 `env:"READ_LIMIT"`

	// MessageRate is the per-connection inbound message rate per second.
	// Zero disables limiting.
	// Env: SERVER_MESSAGE_RATE
	MessageRate float64 `env:"MESSAGE_RATE"`

	// MessageBurst is the limiter burst size.
	// Env: SERVER_MESSAGE_BURST
	MessageBurst int `env:"MESSAGE_BURST"`

	// RequestTimeout bounds the processing of one request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// WSURL is the WebSocket endpoint, e.g. "ws://localhost:3000/ws".
	// Env: ADAPTER_WS_URL
	WSURL string `env:"WS_URL"`

	// HTTPAddress is the base URL of the server HTTP API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds dial and HTTP requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SendRetryDelay is the wait before reconnecting after a send on a closed
	// channel.
	// Env: ADAPTER_SEND_RETRY_DELAY
	SendRetryDelay time.Duration `env:"SEND_RETRY_DELAY"`

	// ReconnectDelay is the wait before reconnecting after an unexpected
	// close.
	// Env: ADAPTER_RECONNECT_DELAY
	ReconnectDelay time.Duration `env:"RECONNECT_DELAY"`

	// DisableReconnect turns automatic reconnection off.
	// Env: ADAPTER_DISABLE_RECONNECT
	DisableReconnect bool `env:"DISABLE_RECONNECT"`
}

// Calls holds call state tracking timings.
type Calls struct {
	// ResetDelay is how long a ticket shows its result before going idle.
	// Env: CALLS_RESET_DELAY
	ResetDelay time.Duration `env:"RESET_DELAY"`

	// StartDelay postpones the remote call after the ticket is marked
	// processing.
	// Env: CALLS_START_DELAY
	StartDelay time.Duration `env:"START_DELAY"`

	// Timeout forces a ticket into the error state when no response arrives
	// in time. Zero waits forever.
	// Env: CALLS_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// HeartbeatInterval is how often the client pings the server.
	// Env: WORKERS_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}
	return cfg, nil
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-profile-hub",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			Files: Files{UsersFile: "data/db.json"},
			Local: Local{DSN: "profile-hub.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:3000",
			ReadLimit:      1 << 20,
			RequestTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			WSURL:          "ws://localhost:3000/ws",
			HTTPAddress:    "http://localhost:3000",
			RequestTimeout: 10 * time.Second,
			SendRetryDelay: time.Second,
			ReconnectDelay: 10 * time.Second,
		},
		Calls: Calls{
			ResetDelay: time.Second,
		},
		Workers: Workers{
			HeartbeatInterval: 30 * time.Second,
		},
	}
}
