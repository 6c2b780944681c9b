package ws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-profile-hub/internal/app"
	"github.com/MKhiriev/go-profile-hub/internal/utils"
	"github.com/MKhiriev/go-profile-hub/models"
)

func (h *Handler) apiRoutes() map[string]apiHandler {
	return map[string]apiHandler{
		models.APIPing:           h.ping,
		models.APILogin:          h.login,
		models.APIRecoverSession: h.recoverSession,
		models.APIEditProfile:    h.editProfile,
		models.APILogOut:         h.logOut,
	}
}

// handleFrame decodes one inbound frame and produces its response.
func (h *Handler) handleFrame(ctx context.Context, c *connection, frame []byte) models.Response {
	var req models.Request
	if err := json.Unmarshal(frame, &req); err != nil {
		c.logger.Warn().Err(err).Int("size", len(frame)).Msg("invalid JSON frame")
		return failure(app.MsgInvalidJSON, "", nil)
	}

	log := c.logger.WithAPI(req.API, req.MessageID)
	ctx = log.WithContext(ctx)
	if guid := c.UserGUID(); guid != "" {
		ctx = utils.WithUserGUID(ctx, guid)
	}

	resp := h.dispatch(ctx, c, req)
	resp.API = req.API
	resp.MessageID = req.MessageID

	log.Debug().Bool("success", resp.Success).Str("error", resp.Error).Msg("request served")
	return resp
}

func (h *Handler) dispatch(ctx context.Context, c *connection, req models.Request) models.Response {
	if !c.allow() {
		return failure(app.MsgTooManyRequests, app.DescRequestFailed, nil)
	}

	handle, ok := h.routes[req.API]
	if !ok {
		return failure(app.MsgUnknownAPI, app.DescRequestFailed, nil)
	}

	if h.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.RequestTimeout)
		defer cancel()
	}

	return handle(ctx, c, req.Data)
}

// decodeData unmarshals a request payload. A missing payload leaves v
// untouched.
func decodeData(data json.RawMessage, v any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error decoding request data: %w", err)
	}
	return nil
}

func success(description string, data any) models.Response {
	return models.Response{
		Success:     true,
		Category:    models.CategoryInfo,
		Description: description,
		Data:        encodeData(data),
	}
}

func failure(errMsg, description string, data any) models.Response {
	return models.Response{
		Success:     false,
		Category:    models.CategoryError,
		Description: description,
		Data:        encodeData(data),
		Error:       errMsg,
	}
}

func encodeData(data any) json.RawMessage {
	if data == nil {
		return nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	return raw
}

// entityTables is the payload shape of record carrying responses: table name
// to records.
type entityTables map[string][]models.Record

func emptyTables(tables ...string) entityTables {
	out := make(entityTables, len(tables))
	for _, t := range tables {
		out[t] = []models.Record{}
	}
	return out
}
