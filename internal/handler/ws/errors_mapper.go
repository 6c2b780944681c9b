package ws

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-profile-hub/internal/app"
	"github.com/MKhiriev/go-profile-hub/internal/service"
	"github.com/MKhiriev/go-profile-hub/internal/store"
	"github.com/MKhiriev/go-profile-hub/internal/validators"
)

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidValue,
	service.ErrWrongPassword:           app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid: app.MsgInvalidToken,
	service.ErrFieldNotEditable:        app.MsgFieldNotEditable,
	service.ErrInvalidFieldValue:       app.MsgInvalidValue,

	store.ErrUserNotFound:      app.MsgUserNotFound,
	store.ErrEmailAlreadyTaken: app.MsgEmailAlreadyTaken,

	validators.ErrEmptyFieldPath:   app.MsgFieldNotEditable,
	validators.ErrInvalidFieldPath: app.MsgFieldNotEditable,
	validators.ErrMissingValue:     app.MsgInvalidValue,
	validators.ErrValueTooLong:     app.MsgInvalidValue,

	context.DeadlineExceeded: app.MsgRequestTimedOut,
}

// messageFromError returns the wire error string for err. Unknown errors
// are reported as internal so no detail leaks to the client.
func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}
