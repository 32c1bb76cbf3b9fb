package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"github.com/andrewpaige1/wisdom-compass-api/auth"
	"github.com/andrewpaige1/wisdom-compass-api/models"
	"github.com/andrewpaige1/wisdom-compass-api/utils"
)

const (
	stateCookieName = "wisdom_oauth_state"
	stateTTL        = 10 * time.Minute
)

// IdentityProvider is the OAuth side of auth.Provider.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.Identity, error)
	LogoutRedirect(returnTo string) string
}

type UserUpserter interface {
	UpsertUser(ctx context.Context, user models.User) (*models.User, error)
}

// AuthHandler runs the browser login flow.
type AuthHandler struct {
	Provider      IdentityProvider
	Sessions      *auth.SessionManager
	Users         UserUpserter
	Log           *zap.Logger
	ReturnTo      string
	SecureCookies bool
}

// Login redirects to the identity provider with a fresh state value.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state, err := gonanoid.New(32)
	if err != nil {
		h.Log.Error("Login: failed to generate state", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Failed to start login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/api",
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(stateTTL.Seconds()),
	})
	http.Redirect(w, r, h.Provider.AuthCodeURL(state), http.StatusFound)
}

// Callback finishes the code flow, stores the user and opens a session.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookieName)
	state := r.URL.Query().Get("state")
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(state)) != 1 {
		utils.WriteError(w, http.StatusBadRequest, "Invalid login state")
		return
	}
	h.clearState(w)

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("Callback: identity provider returned an error",
			zap.String("error", errParam),
			zap.String("description", r.URL.Query().Get("error_description")),
		)
		http.Redirect(w, r, "/api/login", http.StatusFound)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		utils.WriteError(w, http.StatusBadRequest, "Missing authorization code")
		return
	}

	identity, err := h.Provider.Exchange(r.Context(), code)
	if err != nil {
		h.Log.Warn("Callback: code exchange failed", zap.Error(err))
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.Users.UpsertUser(r.Context(), identity.User())
	if err != nil {
		h.Log.Error("Callback: failed to save user", zap.Error(err), zap.String("user_id", identity.Subject))
		utils.WriteError(w, http.StatusInternalServerError, "Failed to save user")
		return
	}

	if _, err := h.Sessions.Start(r.Context(), w, user.ID); err != nil {
		h.Log.Error("Callback: failed to start session", zap.Error(err), zap.String("user_id", user.ID))
		utils.WriteError(w, http.StatusInternalServerError, "Failed to start session")
		return
	}

	target := "/"
	if !user.SetupCompleted {
		target = "/setup"
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// Logout ends the local session and the identity provider's session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.End(r.Context(), w, r); err != nil {
		h.Log.Warn("Logout: failed to delete session", zap.Error(err))
	}
	http.Redirect(w, r, h.Provider.LogoutRedirect(h.ReturnTo), http.StatusFound)
}

func (h *AuthHandler) clearState(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/api",
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
