package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-profile-hub/internal/adapter"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/store"
	"github.com/MKhiriev/go-profile-hub/models"
)

type clientSessionService struct {
	adapter       adapter.ServerAdapter
	cache         *store.LocalCache
	localSessions store.LocalSessionRepository
	now           func() time.Time
	logger        *logger.Logger
}

func NewClientSessionService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		adapter:       serverAdapter,
		cache:         storages.Cache,
		localSessions: storages.LocalSessions,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *clientSessionService) Login(ctx context.Context, params models.LoginData, h models.ChangeHandlers) error {
	ctx = context.WithoutCancel(ctx)

	_, err := s.adapter.API(adapter.CallParams{
		API:     models.APILogin,
		Data:    params,
		Handler: s.handler(s.rememberOnSuccess(ctx, h)),
	})
	if err != nil {
		return fmt.Errorf("error sending login request: %w", err)
	}
	return nil
}

func (s *clientSessionService) RecoverSession(ctx context.Context, params models.RecoverSessionData, h models.ChangeHandlers) error {
	ctx = context.WithoutCancel(ctx)

	_, err := s.adapter.API(adapter.CallParams{
		API:     models.APIRecoverSession,
		Data:    params,
		Handler: s.handler(s.forgetOnError(ctx, s.rememberOnSuccess(ctx, h))),
	})
	if err != nil {
		return fmt.Errorf("error sending session recovery request: %w", err)
	}
	return nil
}

// LogOut forgets the local session on any answer: the server drops the
// tokens whether or not it reports success.
func (s *clientSessionService) LogOut(ctx context.Context, h models.ChangeHandlers) error {
	ctx = context.WithoutCancel(ctx)

	forget := h
	forget.Success = s.forgetting(ctx, h.Success)
	forget.Error = s.forgetting(ctx, h.Error)

	_, err := s.adapter.API(adapter.CallParams{
		API:     models.APILogOut,
		Handler: s.handler(forget),
	})
	if err != nil {
		return fmt.Errorf("error sending log out request: %w", err)
	}
	return nil
}

func (s *clientSessionService) StoredSession(ctx context.Context) (models.LocalSession, error) {
	session, err := s.localSessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.LocalSession{}, ErrNoLocalSession
	}
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("error loading local session: %w", err)
	}
	if session.Token == "" {
		return models.LocalSession{}, ErrNoLocalSession
	}
	return session, nil
}

// handler builds the response handler: the cache is updated first, then h
// runs with the resulting changes.
func (s *clientSessionService) handler(h models.ChangeHandlers) models.ResponseHandler {
	return s.adapter.CreateHandler(s.cache.WrapHandlers(h))
}

func (s *clientSessionService) rememberOnSuccess(ctx context.Context, h models.ChangeHandlers) models.ChangeHandlers {
	next := h.Success
	h.Success = func(resp models.Response, changes models.Changes) {
		s.remember(ctx, changes)
		if next != nil {
			next(resp, changes)
		}
	}
	return h
}

func (s *clientSessionService) forgetOnError(ctx context.Context, h models.ChangeHandlers) models.ChangeHandlers {
	h.Error = s.forgetting(ctx, h.Error)
	return h
}

func (s *clientSessionService) forgetting(ctx context.Context, next func(models.Response, models.Changes)) func(models.Response, models.Changes) {
	return func(resp models.Response, changes models.Changes) {
		if err := s.localSessions.ClearSession(ctx); err != nil {
			s.logger.Err(err).Msg("error clearing local session")
		}
		if next != nil {
			next(resp, changes)
		}
	}
}

func (s *clientSessionService) remember(ctx context.Context, changes models.Changes) {
	token, user := sessionFromChanges(changes)
	if token == "" {
		s.logger.Warn().Msg("session response carried no token")
		return
	}

	err := s.localSessions.SaveSession(ctx, models.LocalSession{
		Token:       token,
		CurrentUser: user,
		UpdatedAt:   s.now(),
	})
	if err != nil {
		s.logger.Err(err).Msg("error saving local session")
	}
}

// sessionFromChanges picks the session token and the user record out of a
// login or recovery response.
func sessionFromChanges(changes models.Changes) (string, models.Record) {
	var token string
	if sessions := changes[models.TableSession]; len(sessions) > 0 {
		rec := sessions[0].Record
		if token = rec.String("token"); token == "" {
			token, _ = rec.ID()
		}
	}

	var user models.Record
	if users := changes[models.TableUser]; len(users) > 0 {
		user = users[0].Record
	}
	return token, user
}
