// Package http implements the HTTP surface of the server.
//
// It wires the chi router: the WebSocket endpoint at /ws and the small JSON
// and text API under /api. Request tracing and access logging are applied
// here before requests reach the handlers.
package http
