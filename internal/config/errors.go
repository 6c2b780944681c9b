package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing WebSocket URL or zero reconnect delay).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, neither a users file nor a DSN on the server).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCallConfigs indicates invalid call tracking timings.
	ErrInvalidCallConfigs = errors.New("invalid call configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero heartbeat interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
