package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-profile-hub/models"
)

// ClientSessionService defines the client-side contract for opening, resuming
// and closing a session on the server. Every method only sends the request;
// the outcome arrives through handlers once the server answers.
type ClientSessionService interface {
	// Login sends the credentials. On success the issued token and the user
	// record are remembered locally for later recovery.
	Login(ctx context.Context, params models.LoginData, handlers models.ChangeHandlers) error

	// RecoverSession re-authenticates the connection with a token from a
	// previous run. A rejected token is forgotten.
	RecoverSession(ctx context.Context, params models.RecoverSessionData, handlers models.ChangeHandlers) error

	// LogOut closes every session of the user on the server and forgets the
	// local one.
	LogOut(ctx context.Context, handlers models.ChangeHandlers) error

	// StoredSession returns what the previous run remembered.
	StoredSession(ctx context.Context) (models.LocalSession, error)
}

// ClientProfileService defines the client-side contract for editing the
// logged in user's profile.
type ClientProfileService interface {
	// EditProfile sets one field, addressed by a dotted path such as
	// "name.first". The updated USER record reaches the local cache before
	// handlers run.
	EditProfile(ctx context.Context, params models.EditProfileData, handlers models.ChangeHandlers) error
}

// ClientHeartbeatJob defines the contract for a background worker that pings
// the server periodically so dropped connections are noticed and reopened.
type ClientHeartbeatJob interface {
	// Start launches the background goroutine. It pings every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
