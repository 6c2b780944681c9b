// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-profile-hub/internal/app"
	"github.com/MKhiriev/go-profile-hub/internal/store"
	"github.com/MKhiriev/go-profile-hub/models"
)

// ResponseError translates the error string of a failed response into a
// service business error. Successful responses yield nil.
func ResponseError(resp models.Response) error {
	if resp.Success && resp.Category != models.CategoryError {
		return nil
	}

	switch resp.Error {
	case app.MsgInvalidCredentials:
		return ErrWrongPassword
	case app.MsgInvalidToken:
		return ErrTokenIsExpiredOrInvalid
	case app.MsgUserNotFound:
		return store.ErrUserNotFound
	case app.MsgNotAuthenticated:
		return ErrNotAuthenticated
	case app.MsgFieldNotEditable:
		return ErrFieldNotEditable
	case app.MsgInvalidValue:
		return ErrInvalidFieldValue
	case app.MsgEmailAlreadyTaken:
		return store.ErrEmailAlreadyTaken
	case app.MsgUnknownAPI:
		return ErrUnknownAPI
	case app.MsgInvalidJSON:
		return ErrMalformedRequest
	case app.MsgTooManyRequests:
		return ErrRateLimited
	case app.MsgRequestTimedOut:
		return ErrRequestTimedOut
	case "":
		return ErrServerFailure
	default:
		return fmt.Errorf("%w: %s", ErrServerFailure, resp.Error)
	}
}

// Err returns the business error of a failed call, or nil.
func (r CallResult) Err() error {
	if r.OK() {
		return nil
	}
	if err := ResponseError(r.Response); err != nil {
		return err
	}
	return ErrServerFailure
}
