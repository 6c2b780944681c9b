package ws

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/go-profile-hub/internal/app"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/service"
	"github.com/MKhiriev/go-profile-hub/internal/utils"
	"github.com/MKhiriev/go-profile-hub/models"
)

func (h *Handler) ping(_ context.Context, _ *connection, _ json.RawMessage) models.Response {
	return success("", models.PongData{Message: "pong"})
}

func (h *Handler) login(ctx context.Context, c *connection, data json.RawMessage) models.Response {
	log := logger.FromContext(ctx)

	var params models.LoginData
	if err := decodeData(data, &params); err != nil {
		log.Err(err).Msg("invalid login data")
		return failure(app.MsgInvalidJSON, app.DescLoginFailed, emptyTables(models.TableUser, models.TableSession))
	}
	if err := h.validator.Validate(ctx, params); err != nil {
		log.Debug().Err(err).Msg("login rejected")
		return failure(app.MsgInvalidCredentials, app.DescLoginFailed, emptyTables(models.TableUser, models.TableSession))
	}

	user, session, err := h.services.AuthService.Login(ctx, params.Email, params.Password)
	if err != nil {
		msg := messageFromError(err)
		if errors.Is(err, service.ErrInvalidDataProvided) {
			msg = app.MsgInvalidCredentials
		}
		return failure(msg, app.DescLoginFailed, emptyTables(models.TableUser, models.TableSession))
	}

	payload, err := sessionTables(user, session)
	if err != nil {
		log.Err(err).Msg("error building login payload")
		return failure(app.MsgInternalServerError, app.DescLoginFailed, emptyTables(models.TableUser, models.TableSession))
	}

	c.signIn(user.GUID)
	return success(app.DescLoginSuccessful, payload)
}

func (h *Handler) recoverSession(ctx context.Context, c *connection, data json.RawMessage) models.Response {
	log := logger.FromContext(ctx)

	var params models.RecoverSessionData
	if err := decodeData(data, &params); err != nil {
		log.Err(err).Msg("invalid recover session data")
		return failure(app.MsgInvalidJSON, app.DescSessionRecoveryFail, emptyTables(models.TableUser, models.TableSession))
	}
	if err := h.validator.Validate(ctx, params); err != nil {
		return failure(app.MsgInvalidToken, app.DescSessionRecoveryFail, emptyTables(models.TableUser, models.TableSession))
	}

	user, session, err := h.services.AuthService.RecoverSession(ctx, params.Token)
	if err != nil {
		return failure(messageFromError(err), app.DescSessionRecoveryFail, emptyTables(models.TableUser, models.TableSession))
	}

	payload, err := sessionTables(user, session)
	if err != nil {
		log.Err(err).Msg("error building recover session payload")
		return failure(app.MsgInternalServerError, app.DescSessionRecoveryFail, emptyTables(models.TableUser, models.TableSession))
	}

	c.signIn(user.GUID)
	return success(app.DescSessionRecovered, payload)
}

// logOut revokes every session of the signed in user and signs out all of
// their connections. An anonymous connection gets the same answer.
func (h *Handler) logOut(ctx context.Context, c *connection, _ json.RawMessage) models.Response {
	guid, ok := utils.GetUserGUIDFromContext(ctx)
	if !ok {
		return success(app.DescSessionClosed, nil)
	}

	if _, err := h.services.AuthService.LogOut(ctx, guid); err != nil {
		logger.FromContext(ctx).Err(err).Str("guid", guid).Msg("log out failed")
		return failure(messageFromError(err), app.DescRequestFailed, nil)
	}

	h.hub.SignOutUser(guid)
	c.signOut()
	return success(app.DescSessionClosed, nil)
}

func sessionTables(user models.User, session models.Session) (entityTables, error) {
	rec, err := user.ToRecord()
	if err != nil {
		return nil, err
	}
	return entityTables{
		models.TableUser:    {rec},
		models.TableSession: {session.ToRecord()},
	}, nil
}
