// Package server runs the HTTP server that carries the WebSocket endpoint and
// the HTTP API, and shuts it down gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
