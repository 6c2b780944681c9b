package ws

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-profile-hub/internal/app"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/utils"
	"github.com/MKhiriev/go-profile-hub/models"
)

// editProfile changes one field of the signed in user and pushes the new
// record to the user's other connections.
func (h *Handler) editProfile(ctx context.Context, c *connection, data json.RawMessage) models.Response {
	log := logger.FromContext(ctx)

	guid, ok := utils.GetUserGUIDFromContext(ctx)
	if !ok {
		return failure(app.MsgNotAuthenticated, app.DescProfileUpdateFailed, nil)
	}

	var params models.EditProfileData
	if err := decodeData(data, &params); err != nil {
		log.Err(err).Msg("invalid edit profile data")
		return failure(app.MsgInvalidJSON, app.DescProfileUpdateFailed, emptyTables(models.TableUser))
	}
	if err := h.validator.Validate(ctx, params); err != nil {
		return failure(messageFromError(err), app.DescProfileUpdateFailed, emptyTables(models.TableUser))
	}

	user, err := h.services.ProfileService.EditProfile(ctx, guid, params.Field, params.Value)
	if err != nil {
		return failure(messageFromError(err), app.DescProfileUpdateFailed, emptyTables(models.TableUser))
	}

	rec, err := user.ToRecord()
	if err != nil {
		log.Err(err).Msg("error building user record")
		return failure(app.MsgInternalServerError, app.DescProfileUpdateFailed, emptyTables(models.TableUser))
	}
	payload := entityTables{models.TableUser: {rec}}

	pushed := h.hub.PushToUser(guid, c, models.Response{
		API:      models.TableUser,
		Success:  true,
		Category: models.CategoryInfo,
		Data:     encodeData(payload),
	})
	log.Debug().Str("field", params.Field).Int("pushed", pushed).Msg("profile updated")

	return success(app.DescProfileUpdated, payload)
}
