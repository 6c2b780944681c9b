package store

import (
	"context"

	"github.com/MKhiriev/go-profile-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository gives access to stored user accounts.
type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByGUID(ctx context.Context, guid string) (models.User, error)
	// UpdateUser loads the user, applies mutate and persists the result
	// atomically. An error from mutate aborts the update and is returned
	// unchanged.
	UpdateUser(ctx context.Context, guid string, mutate func(*models.User) error) (models.User, error)
	// ImportUsers inserts users or replaces existing ones with the same id.
	ImportUsers(ctx context.Context, users ...models.User) error
}

// SessionRepository keeps issued session tokens.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	FindSession(ctx context.Context, token string) (models.Session, error)
	// DeleteUserSessions removes every session of the user and reports how
	// many were removed.
	DeleteUserSessions(ctx context.Context, userGUID string) (int, error)
}
