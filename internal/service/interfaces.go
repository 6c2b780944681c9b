package service

import (
	"context"

	"github.com/MKhiriev/go-profile-hub/models"
)

// AuthService authenticates users and manages their session tokens.
type AuthService interface {
	// Login checks the credentials and opens a new session.
	Login(ctx context.Context, email, password string) (models.User, models.Session, error)
	// RecoverSession resolves a previously issued token back to its session
	// and user.
	RecoverSession(ctx context.Context, token string) (models.User, models.Session, error)
	// LogOut drops every session of the user and reports how many were open.
	LogOut(ctx context.Context, userGUID string) (int, error)
}

// ProfileService edits stored user profiles.
type ProfileService interface {
	// EditProfile sets one editable field, addressed by a dotted path, and
	// returns the updated user.
	EditProfile(ctx context.Context, userGUID, field string, value any) (models.User, error)
}

// AppInfoService exposes static information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
