// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no HTTP address, so neither the WebSocket endpoint nor
// the HTTP API can be served. The application fails at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
