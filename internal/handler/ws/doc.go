// Package ws implements the WebSocket endpoint of the server.
//
// Every inbound frame is a JSON request {api, messageId, data}; the endpoint
// answers each one with exactly one response frame echoing api and
// messageId. Requests of one connection are processed in arrival order.
// Records changed by a profile edit are pushed, without a messageId, to the
// other connections of the same user.
package ws
