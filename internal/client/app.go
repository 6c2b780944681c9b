// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-profile-hub/internal/adapter"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/store"
	"github.com/MKhiriev/go-profile-hub/internal/workers"
)

var errMissingDependency = errors.New("client app dependency is not set")

// App owns the client process lifecycle: background jobs, the UI and the
// connection.
type App struct {
	adapter  adapter.ServerAdapter
	storages *store.ClientStorages
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages, ui UI, jobs *workers.Workers, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || storages == nil || ui == nil || jobs == nil {
		return nil, errMissingDependency
	}

	return &App{
		adapter:  serverAdapter,
		storages: storages,
		ui:       ui,
		workers:  jobs,
		logger:   logger,
	}, nil
}

// Run starts the background jobs and blocks in the UI until the user quits
// or the process is signalled. The connection and the local store are closed
// on the way out.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.workers.Start(ctx)
	defer func() {
		a.workers.Stop()
		a.adapter.Close()
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("error closing local storage")
		}
		a.logger.Info().Msg("client stopped")
	}()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}
