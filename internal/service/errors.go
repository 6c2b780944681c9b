package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrFieldNotEditable  = errors.New("field is not editable")
	ErrInvalidFieldValue = errors.New("invalid field value")
)

// Client side errors.
var (
	// ErrNoLocalSession is returned by session recovery when nothing was
	// remembered from a previous run.
	ErrNoLocalSession = errors.New("no local session to recover")

	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUnknownAPI       = errors.New("unknown api")
	ErrMalformedRequest = errors.New("malformed request")
	ErrRateLimited      = errors.New("too many requests")
	ErrRequestTimedOut  = errors.New("request timed out")
	ErrServerFailure    = errors.New("server failure")
)
