package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-profile-hub/internal/config"
	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/store"
	"github.com/MKhiriev/go-profile-hub/internal/utils"
	"github.com/MKhiriev/go-profile-hub/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against a UserRepository, issues signed JWT session
// tokens and keeps them in a SessionRepository.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// sessionRepository stores issued tokens. A token is only accepted while
	// its session is present here, so logging out revokes it even before the
	// JWT expires.
	sessionRepository store.SessionRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// ids generates the jti claim of each token.
	ids *utils.UUIDGenerator

	// now is the clock used for session timestamps.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, sessions store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    users,
		sessionRepository: sessions,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// Login authenticates a user by email and password and opens a new session.
//
// Returns the user and the created session or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrWrongPassword if no user has that email or the password does not
//     match. Both cases look the same to the caller.
//   - ErrTokenCreationFailed if the token cannot be signed.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, models.Session{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("email", email).Msg("login for unknown email")
		return models.User{}, models.Session{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !passwordMatches(user.Password, password) {
		log.Warn().Str("guid", user.GUID).Msg("wrong password")
		return models.User{}, models.Session{}, ErrWrongPassword
	}

	session, err := a.openSession(ctx, user.GUID)
	if err != nil {
		log.Err(err).Str("guid", user.GUID).Msg("session creation failed")
		return models.User{}, models.Session{}, err
	}

	log.Info().Str("guid", user.GUID).Msg("user logged in")
	return user, session, nil
}

// RecoverSession validates a token issued by Login and returns the session
// together with its current user.
//
// Returns ErrTokenIsExpiredOrInvalid when the token is unknown, revoked,
// expired or fails signature checks. A session whose user was removed yields
// store.ErrUserNotFound.
func (a *authService) RecoverSession(ctx context.Context, token string) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessionRepository.FindSession(ctx, token)
	if err != nil {
		log.Warn().Err(err).Msg("session lookup failed")
		return models.User{}, models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	parsed, err := utils.ValidateAndParseJWTToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil || parsed.UserGUID != session.UserGUID {
		log.Warn().Err(err).Str("guid", session.UserGUID).Msg("token verification failed")
		return models.User{}, models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByGUID(ctx, session.UserGUID)
	if err != nil {
		log.Err(err).Str("guid", session.UserGUID).Msg("session user lookup failed")
		return models.User{}, models.Session{}, fmt.Errorf("session user lookup failed: %w", err)
	}

	return user, session, nil
}

// LogOut removes every session of the user.
func (a *authService) LogOut(ctx context.Context, userGUID string) (int, error) {
	if userGUID == "" {
		return 0, ErrInvalidDataProvided
	}

	n, err := a.sessionRepository.DeleteUserSessions(ctx, userGUID)
	if err != nil {
		return 0, fmt.Errorf("error deleting user sessions: %w", err)
	}

	logger.FromContext(ctx).Info().Str("guid", userGUID).Int("sessions", n).Msg("user logged out")
	return n, nil
}

func (a *authService) openSession(ctx context.Context, userGUID string) (models.Session, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userGUID, a.ids.Generate(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	session := models.Session{
		Token:     token.String(),
		UserGUID:  userGUID,
		CreatedAt: a.now(),
	}
	if token.ExpiresAt != nil {
		session.ExpiresAt = token.ExpiresAt.Time
	}

	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error storing session: %w", err)
	}
	return session, nil
}

// passwordMatches compares a stored password with the supplied one. Stored
// values with a bcrypt prefix are checked as hashes; seed data keeps plain
// values, compared in constant time.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
