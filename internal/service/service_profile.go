package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/internal/store"
	"github.com/MKhiriev/go-profile-hub/internal/utils"
	"github.com/MKhiriev/go-profile-hub/models"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindEmail
	kindAge
)

// editableFields lists the profile paths a user may change. Identity,
// credentials and account state are not in here.
var editableFields = map[string]fieldKind{
	"email":      kindEmail,
	"name.first": kindText,
	"name.last":  kindText,
	"company":    kindText,
	"phone":      kindText,
	"address":    kindText,
	"eyeColor":   kindText,
	"picture":    kindText,
	"age":        kindAge,
}

const maxAge = 150

type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewProfileService returns a ProfileService backed by users.
func NewProfileService(users store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: users,
		logger:         logger,
	}
}

// EditProfile updates one field of the user's profile.
//
// Returns ErrFieldNotEditable for paths outside the editable set,
// ErrInvalidFieldValue when the value has the wrong type or format, and the
// repository errors (store.ErrUserNotFound, store.ErrEmailAlreadyTaken)
// wrapped.
func (s *profileService) EditProfile(ctx context.Context, userGUID, field string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	if userGUID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	kind, ok := editableFields[field]
	if !ok {
		log.Warn().Str("guid", userGUID).Str("field", field).Msg("edit of non-editable field")
		return models.User{}, fmt.Errorf("%w: %q", ErrFieldNotEditable, field)
	}

	normalized, err := normalizeValue(kind, value)
	if err != nil {
		log.Warn().Err(err).Str("guid", userGUID).Str("field", field).Msg("invalid profile value")
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateUser(ctx, userGUID, func(u *models.User) error {
		doc, err := u.ToDocument()
		if err != nil {
			return err
		}
		if err = utils.SetPath(doc, field, normalized); err != nil {
			return fmt.Errorf("%w: %w", ErrFieldNotEditable, err)
		}
		updated, err := models.UserFromDocument(doc)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFieldValue, err)
		}
		*u = updated
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrFieldNotEditable) && !errors.Is(err, ErrInvalidFieldValue) {
			log.Err(err).Str("guid", userGUID).Str("field", field).Msg("profile update failed")
		}
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	log.Info().Str("guid", userGUID).Str("field", field).Msg("profile updated")
	return user, nil
}

// normalizeValue checks the decoded JSON value against the field kind and
// returns it in the form stored in the user document.
func normalizeValue(kind fieldKind, value any) (any, error) {
	switch kind {
	case kindAge:
		n, ok := asInt(value)
		if !ok || n < 0 || n > maxAge {
			return nil, fmt.Errorf("%w: age must be a whole number between 0 and %d", ErrInvalidFieldValue, maxAge)
		}
		return n, nil
	case kindEmail:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: email must be a string", ErrInvalidFieldValue)
		}
		s = strings.ToLower(strings.TrimSpace(s))
		addr, err := mail.ParseAddress(s)
		if err != nil || addr.Address != s {
			return nil, fmt.Errorf("%w: %q is not an email address", ErrInvalidFieldValue, s)
		}
		return s, nil
	default:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: value must be a string", ErrInvalidFieldValue)
		}
		return strings.TrimSpace(s), nil
	}
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
