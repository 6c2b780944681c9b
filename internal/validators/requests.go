package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-profile-hub/internal/utils"
	"github.com/MKhiriev/go-profile-hub/models"
)

// Field names accepted by Validate for field-scoped checks.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldToken    = "token"
	FieldPath     = "field"
	FieldValue    = "value"
)

const (
	maxPathLength  = 64
	maxValueLength = 1024
)

// RequestValidator checks decoded WebSocket request payloads.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate accepts models.LoginData, models.RecoverSessionData and
// models.EditProfileData (values or pointers). With no field names every
// field of the payload is checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch data := obj.(type) {
	case models.LoginData:
		return v.validateLogin(data, fields...)
	case *models.LoginData:
		if data == nil {
			return ErrUnsupportedType
		}
		return v.validateLogin(*data, fields...)
	case models.RecoverSessionData:
		return v.validateRecover(data, fields...)
	case *models.RecoverSessionData:
		if data == nil {
			return ErrUnsupportedType
		}
		return v.validateRecover(*data, fields...)
	case models.EditProfileData:
		return v.validateEdit(data, fields...)
	case *models.EditProfileData:
		if data == nil {
			return ErrUnsupportedType
		}
		return v.validateEdit(*data, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateLogin(data models.LoginData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}
	for _, field := range fields {
		switch field {
		case FieldEmail:
			if strings.TrimSpace(data.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if data.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RequestValidator) validateRecover(data models.RecoverSessionData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken}
	}
	for _, field := range fields {
		if field != FieldToken {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if strings.TrimSpace(data.Token) == "" {
			return ErrEmptyToken
		}
	}
	return nil
}

func (v *RequestValidator) validateEdit(data models.EditProfileData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPath, FieldValue}
	}
	for _, field := range fields {
		switch field {
		case FieldPath:
			if err := validateFieldPath(data.Field); err != nil {
				return err
			}
		case FieldValue:
			if data.Value == nil {
				return ErrMissingValue
			}
			if s, ok := data.Value.(string); ok && utf8.RuneCountInString(s) > maxValueLength {
				return ErrValueTooLong
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

// validateFieldPath accepts "company" or "name.first" but rejects empty
// segments and oversized paths.
func validateFieldPath(path string) error {
	if path == "" {
		return ErrEmptyFieldPath
	}
	if len(path) > maxPathLength {
		return ErrInvalidFieldPath
	}
	segments, err := utils.SplitPath(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFieldPath, err)
	}
	for _, segment := range segments {
		if strings.TrimSpace(segment) != segment {
			return ErrInvalidFieldPath
		}
	}
	return nil
}
