package middleware

import (
	"context"
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"go.uber.org/zap"

	"github.com/andrewpaige1/wisdom-compass-api/auth"
	"github.com/andrewpaige1/wisdom-compass-api/utils"
)

// AccessTokenValidator checks bearer tokens issued by the identity provider.
type AccessTokenValidator interface {
	ValidateAccessToken(ctx context.Context, token string) (*validator.ValidatedClaims, error)
}

// Authenticator resolves the caller from the session cookie, or failing
// that from a bearer access token.
type Authenticator struct {
	sessions *auth.SessionManager
	tokens   AccessTokenValidator
	users    UserStore
	logger   *zap.Logger
}

func NewAuthenticator(sessions *auth.SessionManager, tokens AccessTokenValidator, users UserStore, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		sessions: sessions,
		tokens:   tokens,
		users:    users,
		logger:   logger,
	}
}

// RequireUser rejects requests without a valid session or bearer token.
func (a *Authenticator) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if session, err := a.sessions.Resolve(ctx, r); err == nil {
			ctx = utils.WithPrincipal(ctx, utils.Principal{UserID: session.UserID, SessionID: session.SID})
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		token, err := jwtmiddleware.AuthHeaderTokenExtractor(r)
		if err != nil || token == "" || a.tokens == nil {
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := a.tokens.ValidateAccessToken(ctx, token)
		if err != nil {
			a.logger.Debug("Rejected bearer token", zap.Error(err))
			utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := syncUser(ctx, a.users, claims, a.logger)
		if err != nil {
			a.logger.Error("Failed to sync user", zap.Error(err))
			utils.WriteError(w, http.StatusInternalServerError, "Failed to sync user")
			return
		}

		ctx = context.WithValue(ctx, jwtmiddleware.ContextKey{}, claims)
		ctx = utils.WithPrincipal(ctx, utils.Principal{UserID: user.ID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
