package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims is the payload of the session cookie. ID carries the
// session id and Subject the user id.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// CreateToken signs a session token that expires at expires.
func CreateToken(secret []byte, sid, userID string, expires time.Time) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("auth: session secret not set")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken checks signature, algorithm and expiry and returns the claims.
func VerifyToken(secret []byte, tokenString string) (*SessionClaims, error) {
	if len(secret) == 0 {
		return nil, errors.New("auth: session secret not set")
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.ID == "" || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
