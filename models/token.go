package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed session JWT.
//
// The subject claim carries the user GUID and the jti claim a random id, so two
// logins of the same user never produce the same token.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent to clients.
	SignedString string `json:"-"`

	// UserGUID is the parsed subject claim.
	UserGUID string `json:"-"`
}

// GetUserGUID extracts the user GUID from the subject claim.
func (t *Token) GetUserGUID() (string, error) {
	guid, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting user GUID from token: %w", err)
	}
	if guid == "" {
		return "", errors.New("empty subject in token")
	}
	return guid, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
