// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// profile hub server and client.
//
// Msg* constants are the error strings carried in a response's "error" field.
// Desc* constants are the human-readable descriptions shown to the user.
// Keeping them in one place ensures consistent wording on both sides of the
// wire.
package app

const (
	// MsgInvalidJSON is returned when an inbound frame is not valid JSON.
	MsgInvalidJSON = "Invalid JSON"

	// MsgUnknownAPI is returned for an api name the server does not serve.
	MsgUnknownAPI = "Unknown API"

	// MsgInvalidCredentials is returned when the email/password pair does not
	// match any user.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgInvalidToken is returned when a session token is unknown, expired or
	// fails verification.
	MsgInvalidToken = "Invalid token"

	// MsgUserNotFound is returned when the user behind a session or edit no
	// longer exists.
	MsgUserNotFound = "User not found"

	// MsgNotAuthenticated is returned for privileged calls on a connection
	// without a prior successful login or session recovery.
	MsgNotAuthenticated = "Not authenticated"

	// MsgFieldNotEditable is returned when an edit targets a field outside
	// the editable set.
	MsgFieldNotEditable = "Field not editable"

	// MsgInvalidValue is returned when an edit value has the wrong type or
	// format for its field.
	MsgInvalidValue = "Invalid value"

	// MsgEmailAlreadyTaken is returned when an edit would give two users the
	// same email.
	MsgEmailAlreadyTaken = "Email already taken"

	// MsgTooManyRequests is returned when a connection exceeds its message
	// rate.
	MsgTooManyRequests = "Too many requests"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgRequestTimedOut is the synthetic error the client uses when a
	// tracked call gets no response in time.
	MsgRequestTimedOut = "Request timed out"
)

const (
	DescLoginSuccessful     = "Login successful."
	DescLoginFailed         = "Login failed."
	DescSessionRecovered    = "Session recovered."
	DescSessionRecoveryFail = "Session recovery failed."
	DescProfileUpdated      = "Profile updated."
	DescProfileUpdateFailed = "Profile update failed."
	DescSessionClosed       = "Session closed."
	DescRequestFailed       = "Request failed."
)
