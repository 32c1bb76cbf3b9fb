package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestCreateAndVerifyToken(t *testing.T) {
	token, err := CreateToken(testSecret, "sid-1", "auth0|alice", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.ID)
	assert.Equal(t, "auth0|alice", claims.Subject)
}

func TestVerifyTokenRejects(t *testing.T) {
	valid, err := CreateToken(testSecret, "sid-1", "auth0|alice", time.Now().Add(time.Hour))
	require.NoError(t, err)

	expired, err := CreateToken(testSecret, "sid-1", "auth0|alice", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "sid-1",
			Subject:   "auth0|alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret []byte
		token  string
	}{
		{"wrong secret", []byte("another-secret-another-secret-xx"), valid},
		{"tampered", testSecret, valid[:len(valid)-2] + "xx"},
		{"expired", testSecret, expired},
		{"none algorithm", testSecret, noneAlg},
		{"garbage", testSecret, "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyToken(tt.secret, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestCreateTokenRequiresSecret(t *testing.T) {
	_, err := CreateToken(nil, "sid", "user", time.Now().Add(time.Hour))
	assert.Error(t, err)
}
