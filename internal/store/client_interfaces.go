package store

import (
	"context"

	"github.com/MKhiriev/go-profile-hub/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository remembers the session token and current user between
// client runs.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.LocalSession) error
	LoadSession(ctx context.Context) (models.LocalSession, error)
	ClearSession(ctx context.Context) error
}

// HandlerRegistrar is the part of the correlation registry the local cache
// needs to subscribe to server pushes.
type HandlerRegistrar interface {
	AddHandler(api, key string, handler models.ResponseHandler)
}
