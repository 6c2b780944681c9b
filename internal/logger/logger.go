// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the profile hub server and client.
// Request and connection scoped loggers travel in the context and are read
// back with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger and adds the child logger helpers.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns the server logger: JSON to stdout at debug level, every
// entry tagged with role, a timestamp and the calling function name.
func NewLogger(role string) *Logger {
	return newRoleLogger(os.Stdout, role)
}

// NewClientLogger builds a logger for the terminal client. Output goes to
// logPath (or a "logs" file next to the executable when empty) so it never
// interleaves with the TUI. An unwritable path silences the client.
func NewClientLogger(role, logPath string) *Logger {
	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), "logs")
	}

	var out io.Writer = io.Discard
	if logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		out = logFile
	}

	return newRoleLogger(out, role)
}

func newRoleLogger(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithConnection returns a child logger tagged with a WebSocket connection
// id.
func (l *Logger) WithConnection(connID string) *Logger {
	return &Logger{l.With().Str("conn_id", connID).Logger()}
}

// WithAPI returns a child logger tagged with the api name and message id of
// the frame being processed.
func (l *Logger) WithAPI(api string, messageID int64) *Logger {
	return &Logger{l.With().Str("api", api).Int64("message_id", messageID).Logger()}
}

// FromRequest returns the logger the trace id middleware attached to r.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger stored in ctx, or zerolog's default logger
// when there is none. Never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
