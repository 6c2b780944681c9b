package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-profile-hub/internal/adapter"
	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/store"
	"github.com/MKhiriev/go-profile-hub/models"
)

// Tickets of the tracked client calls.
const (
	TicketLogin             = "Session.login"
	TicketRecoverSession    = "Session.recoverSession"
	TicketLogOut            = "Session.logOut"
	TicketEditProfilePrefix = "User.editProfile"
)

// EditProfileTicket returns the ticket of an edit of field.
func EditProfileTicket(field string) string {
	return FieldTicket(TicketEditProfilePrefix)(models.EditProfileData{Field: field})
}

type ClientServices struct {
	Tracker   *CallTracker
	Session   ClientSessionService
	Profile   ClientProfileService
	Heartbeat ClientHeartbeatJob

	// Tracked calls. Each marks its ticket in Tracker while running.
	Login          TrackedCall[models.LoginData]
	RecoverSession TrackedCall[models.RecoverSessionData]
	LogOut         TrackedCall[struct{}]
	EditProfile    TrackedCall[models.EditProfileData]

	adapter adapter.ServerAdapter
	cache   *store.LocalCache
	logger  *logger.Logger
}

// NewClientServices wires the client services over serverAdapter and
// subscribes the local cache to server pushes.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientCalls, logger *logger.Logger) *ClientServices {
	tracker := NewCallTracker(cfg, logger)
	sessionSvc := NewClientSessionService(storages, serverAdapter, logger)
	profileSvc := NewClientProfileService(storages, serverAdapter)

	storages.Cache.RegisterEntityHandlers(serverAdapter)

	return &ClientServices{
		Tracker:   tracker,
		Session:   sessionSvc,
		Profile:   profileSvc,
		Heartbeat: NewClientHeartbeatJob(serverAdapter, logger),

		Login: WrapCall(tracker, CallConfig[models.LoginData]{
			Name:       TicketLogin,
			Ticket:     StaticTicket[models.LoginData](TicketLogin),
			StartDelay: cfg.StartDelay,
			Timeout:    cfg.Timeout,
		}, sessionSvc.Login),
		RecoverSession: WrapCall(tracker, CallConfig[models.RecoverSessionData]{
			Name:       TicketRecoverSession,
			Ticket:     StaticTicket[models.RecoverSessionData](TicketRecoverSession),
			StartDelay: cfg.StartDelay,
			Timeout:    cfg.Timeout,
		}, sessionSvc.RecoverSession),
		LogOut: WrapCall(tracker, CallConfig[struct{}]{
			Name:       TicketLogOut,
			Ticket:     StaticTicket[struct{}](TicketLogOut),
			StartDelay: cfg.StartDelay,
			Timeout:    cfg.Timeout,
		}, func(ctx context.Context, _ struct{}, h models.ChangeHandlers) error {
			return sessionSvc.LogOut(ctx, h)
		}),
		EditProfile: WrapCall(tracker, CallConfig[models.EditProfileData]{
			Name:       TicketEditProfilePrefix,
			Ticket:     FieldTicket(TicketEditProfilePrefix),
			StartDelay: cfg.StartDelay,
			Timeout:    cfg.Timeout,
		}, profileSvc.EditProfile),

		adapter: serverAdapter,
		cache:   storages.Cache,
		logger:  logger,
	}
}

// ConnectionHandlers are the hooks of ConnectAndRecoverSession.
type ConnectionHandlers struct {
	OnOpen  func()
	OnClose func(err error)
	// OnNoSession runs on open when no session is remembered.
	OnNoSession func()
	// Recovery receives the outcome of the recovery started on every open.
	Recovery models.ChangeHandlers
}

// ConnectAndRecoverSession opens the connection and, every time it opens,
// recovers the remembered session so a reconnected channel is authenticated
// again.
func (c *ClientServices) ConnectAndRecoverSession(ctx context.Context, h ConnectionHandlers) {
	c.adapter.SetOnOpen(func() {
		if h.OnOpen != nil {
			h.OnOpen()
		}

		stored, err := c.Session.StoredSession(ctx)
		if err != nil {
			if !errors.Is(err, ErrNoLocalSession) {
				c.logger.Err(err).Msg("error reading local session")
			}
			if h.OnNoSession != nil {
				h.OnNoSession()
			}
			return
		}

		c.RecoverSession(ctx, models.RecoverSessionData{Token: stored.Token}, h.Recovery)
	})

	c.adapter.SetOnClose(func(err error) {
		if h.OnClose != nil {
			h.OnClose(err)
		}
	})

	c.adapter.Connect()
}

// CurrentUser returns the record of the remembered user, preferring the
// cached copy, which follows server pushes.
func (c *ClientServices) CurrentUser(ctx context.Context) (models.Record, bool) {
	stored, err := c.Session.StoredSession(ctx)
	if err != nil || stored.CurrentUser == nil {
		return nil, false
	}

	if id, ok := stored.CurrentUser.ID(); ok {
		if rec, ok := c.cache.Get(models.TableUser, id); ok {
			return rec, true
		}
	}
	return stored.CurrentUser, true
}

// Cache returns the local record cache.
func (c *ClientServices) Cache() *store.LocalCache {
	return c.cache
}

// SetShowMessage installs the hook receiving every server response that
// carries a description.
func (c *ClientServices) SetShowMessage(fn func(models.Response)) {
	c.adapter.SetShowMessage(fn)
}
