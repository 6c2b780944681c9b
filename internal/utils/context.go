// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, dotted document
// paths, HTTP response writing, HTTP client initialization, JWT token
// generation and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserGUIDCtxKey is the key used to store the authenticated user's GUID in
// the context.
var UserGUIDCtxKey = contextKey("userGUID")

// WithUserGUID returns a copy of ctx carrying guid.
func WithUserGUID(ctx context.Context, guid string) context.Context {
	return context.WithValue(ctx, UserGUIDCtxKey, guid)
}

// GetUserGUIDFromContext retrieves the user GUID from the context.
//
// Returns the GUID and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
//
// Example usage:
//
//	guid, ok := utils.GetUserGUIDFromContext(ctx)
//	if !ok {
//	    // connection is not authenticated
//	}
func GetUserGUIDFromContext(ctx context.Context) (string, bool) {
	guid, ok := ctx.Value(UserGUIDCtxKey).(string)
	return guid, ok && guid != ""
}
