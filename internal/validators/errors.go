package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyToken       = errors.New("token is required")
	ErrEmptyFieldPath   = errors.New("field is required")
	ErrInvalidFieldPath = errors.New("invalid field path")
	ErrMissingValue     = errors.New("value is required")
	ErrValueTooLong     = errors.New("value is too long")
)
