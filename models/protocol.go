package models

import (
	"encoding/json"
	"fmt"
)

// API names understood by the server.
const (
	APIPing           = "ping"
	APILogin          = "login"
	APIRecoverSession = "recover_session"
	APIEditProfile    = "edit_profile"
	APILogOut         = "log_out"
)

// Response categories. Anything other than CategoryError counts as a
// successful outcome for call state tracking.
const (
	CategoryInfo  = "INFO"
	CategoryError = "ERROR"
)

// Request is a client to server frame.
type Request struct {
	API       string          `json:"api"`
	MessageID int64           `json:"messageId"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Response is a server to client frame. Pushes carry a zero MessageID.
type Response struct {
	API         string          `json:"api"`
	MessageID   int64           `json:"messageId,omitempty"`
	Success     bool            `json:"success"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// EntityData decodes the response payload as entity tables. An empty or
// non-object payload yields nil.
func (r Response) EntityData() EntityData {
	if len(r.Data) == 0 {
		return nil
	}

	var data EntityData
	if err := json.Unmarshal(r.Data, &data); err != nil {
		return nil
	}
	return data
}

// DecodeData unmarshals the response payload into v.
func (r Response) DecodeData(v any) error {
	if len(r.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("error decoding %s response data: %w", r.API, err)
	}
	return nil
}

// LoginData is the payload of a login request.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RecoverSessionData is the payload of a recover_session request.
type RecoverSessionData struct {
	Token string `json:"token"`
}

// EditProfileData is the payload of an edit_profile request. Field may be a
// dotted path such as "name.first".
type EditProfileData struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// PongData is the payload of a ping response.
type PongData struct {
	Message string `json:"message"`
}
