package utils

import (
	"context"
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

type principalKey struct{}

// Principal is the authenticated caller. SessionID is empty for bearer
// token requests.
type Principal struct {
	UserID    string
	SessionID string
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok && p.UserID != ""
}

// GetUserID returns the caller's user id, falling back to validated bearer
// claims when no principal was attached.
func GetUserID(r *http.Request) (string, bool) {
	if p, ok := PrincipalFrom(r.Context()); ok {
		return p.UserID, true
	}
	claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
	if !ok || claims.RegisteredClaims.Subject == "" {
		return "", false
	}
	return claims.RegisteredClaims.Subject, true
}
