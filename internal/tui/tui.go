// Package tui is the terminal front end of the profile hub client.
//
// Pages are Bubble Tea models routed by [RootModel]. Call state, cache
// changes, connection events and server messages are produced by the client
// services on their own goroutines and forwarded into the program with
// tea.Program.Send, so the models stay single threaded.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-profile-hub/internal/adapter"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/service"
	"github.com/MKhiriev/go-profile-hub/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	info      adapter.InfoAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, info adapter.InfoAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		info:      info,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run opens the connection, shows the UI and blocks until the user quits or
// ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var program *tea.Program
	send := func(msg tea.Msg) {
		program.Send(msg)
	}

	pages := map[string]tea.Model{
		pageWelcome: newWelcomeModel(ctx, t.info),
		pageLogin:   NewLoginModel(ctx, t.services),
		pageProfile: NewProfileModel(ctx, t.services),
	}
	root := NewRootModel(pages, pageWelcome, t.buildInfo, t.cmdConnect(ctx, send))

	program = tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	unbind := t.bind(send)
	defer unbind()

	t.logger.Info().Msg("tui started")
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running tui: %w", err)
	}
	t.logger.Info().Msg("tui stopped")
	return nil
}

// bind forwards tracker snapshots, cache changes and server messages into the
// program and returns a function undoing it.
func (t *TUI) bind(send func(tea.Msg)) func() {
	stopCalls := t.services.Tracker.Subscribe(func(s service.Snapshot) {
		send(callStateMsg{snapshot: s})
	})
	stopCache := t.services.Cache().Subscribe(func(c models.Changes) {
		send(cacheChangedMsg{changes: c})
	})
	t.services.SetShowMessage(func(resp models.Response) {
		send(serverMessageMsg{resp: resp})
	})

	return func() {
		stopCalls()
		stopCache()
		t.services.SetShowMessage(nil)
	}
}

// cmdConnect opens the connection. Every open recovers the remembered
// session; the outcome moves the UI to the profile or the login page.
func (t *TUI) cmdConnect(ctx context.Context, send func(tea.Msg)) tea.Cmd {
	return func() tea.Msg {
		t.services.ConnectAndRecoverSession(ctx, service.ConnectionHandlers{
			OnOpen: func() {
				send(connectionMsg{open: true})
			},
			OnClose: func(err error) {
				t.logger.Debug().Err(err).Msg("connection closed")
				send(connectionMsg{err: err})
			},
			OnNoSession: func() {
				send(noSessionMsg{})
			},
			Recovery: models.ChangeHandlers{
				Success: func(models.Response, models.Changes) {
					send(sessionRecoveredMsg{})
				},
				Error: func(resp models.Response, _ models.Changes) {
					send(sessionLostMsg{err: service.ResponseError(resp)})
				},
			},
		})
		return nil
	}
}
