package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "guid-1", "jti-1", time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.NotNil(t, token.Token)
	assert.Equal(t, "guid-1", token.UserGUID)
	assert.Equal(t, "test-issuer", token.Issuer)
	assert.Equal(t, "guid-1", token.Subject)
	assert.Equal(t, "jti-1", token.ID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		guid     string
		jti      string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "g", "j", time.Hour, "key"},
		{"empty guid", "iss", "", "j", time.Hour, "key"},
		{"empty jti", "iss", "g", "", time.Hour, "key"},
		{"zero duration", "iss", "g", "j", 0, "key"},
		{"empty key", "iss", "g", "j", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.guid, tt.jti, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestGenerateJWTToken_DistinctIDsGiveDistinctTokens(t *testing.T) {
	a, err := GenerateJWTToken("iss", "guid-1", "jti-a", time.Hour, "key")
	require.NoError(t, err)
	b, err := GenerateJWTToken("iss", "guid-1", "jti-b", time.Hour, "key")
	require.NoError(t, err)

	assert.NotEqual(t, a.SignedString, b.SignedString)
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("iss", "guid-7", "jti", time.Hour, "key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss")
	require.NoError(t, err)
	assert.Equal(t, "guid-7", parsed.UserGUID)
	assert.Equal(t, token.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("iss", "guid-7", "jti", time.Hour, "key")
	require.NoError(t, err)

	expiredClaims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "guid-7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("key"))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  "iss",
		Subject: "guid-7",
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other", "iss"},
		{"wrong issuer", valid.SignedString, "key", "other"},
		{"expired", expired, "key", "iss"},
		{"missing subject", noSubject, "key", "iss"},
		{"missing expiry", noExpiry, "key", "iss"},
		{"garbage", "not.a.token", "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}
