// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the profile hub server.
//
// Requests and responses travel over a single WebSocket ([WSTransport]) as
// JSON frames. Responses are correlated to their callers by message id in a
// [Registry]; frames without a matching id are broadcast to every handler of
// the api, which is how server pushes reach the local cache.
//
// [ServerAdapter] is the surface the service layer uses. [InfoAdapter] covers
// the small plain-HTTP API (version and health).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-profile-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// CallParams describes one request sent through [ServerAdapter.API].
type CallParams struct {
	// API is the server api name, e.g. "login".
	API string
	// Data is marshalled into the request's data field. Nil sends {}.
	Data any
	// Handler, when set, receives the response correlated by message id.
	Handler models.ResponseHandler
}

// ServerAdapter sends requests to the server and routes responses back.
type ServerAdapter interface {
	// API assigns a message id, registers params.Handler as a one-shot
	// handler under it and sends the request. The returned error is the
	// transport error, if any; the request is then dropped.
	API(params CallParams) (int64, error)

	// Ping sends the "ping" api. Used to open the connection and keep it warm.
	Ping() (int64, error)

	// CreateHandler builds a response handler that runs Success or Error by
	// the response's success flag and then Finally.
	CreateHandler(callbacks models.ResponseCallbacks) models.ResponseHandler

	// SetShowMessage installs the hook that receives every response carrying
	// a description. Setting it replaces the previous hook.
	SetShowMessage(fn func(models.Response))

	AddHandler(api, key string, handler models.ResponseHandler)
	RemoveHandler(api, key string)

	Connect()
	Disconnect()
	Connected() bool
	SetOnOpen(fn func())
	SetOnClose(fn func(err error))

	// Close stops reconnect timers and closes the connection for good.
	Close()
}

// InfoAdapter reads the server's plain HTTP endpoints.
type InfoAdapter interface {
	GetServerVersion(ctx context.Context) (string, error)
	GetHealth(ctx context.Context) (models.HealthStatus, error)
}
