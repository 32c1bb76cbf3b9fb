package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/stretchr/testify/assert"
)

func TestGetUserID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetUserID(req)
	assert.False(t, ok)

	withSession := req.WithContext(WithPrincipal(req.Context(), Principal{UserID: "auth0|alice", SessionID: "sid"}))
	id, ok := GetUserID(withSession)
	assert.True(t, ok)
	assert.Equal(t, "auth0|alice", id)

	claims := &validator.ValidatedClaims{RegisteredClaims: validator.RegisteredClaims{Subject: "auth0|bob"}}
	withBearer := req.WithContext(context.WithValue(req.Context(), jwtmiddleware.ContextKey{}, claims))
	id, ok = GetUserID(withBearer)
	assert.True(t, ok)
	assert.Equal(t, "auth0|bob", id)
}

func TestPrincipalFromRequiresUser(t *testing.T) {
	_, ok := PrincipalFrom(WithPrincipal(context.Background(), Principal{SessionID: "sid"}))
	assert.False(t, ok)
}
