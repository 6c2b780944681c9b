// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the merged [StructuredConfig] can start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.UsersFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.ReadLimit < 0 || cfg.Server.MessageRate < 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.MessageRate > 0 && cfg.Server.MessageBurst < 1 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.WSURL == "" || cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.SendRetryDelay <= 0 || cfg.Adapter.ReconnectDelay <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Calls.ResetDelay <= 0 || cfg.Calls.StartDelay < 0 || cfg.Calls.Timeout < 0 {
		return ErrInvalidCallConfigs
	}

	if cfg.Workers.HeartbeatInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
