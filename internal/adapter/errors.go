package adapter

import "errors"

var (
	// ErrNotConnected is returned by Send when the connection is not open.
	// The message is dropped.
	ErrNotConnected = errors.New("websocket not connected")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
