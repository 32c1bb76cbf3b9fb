package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/andrewpaige1/wisdom-compass-api/config"
	"github.com/andrewpaige1/wisdom-compass-api/models"
)

var ErrNoSession = errors.New("no active session")

// SessionStore persists sessions.
type SessionStore interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sid string) (*models.Session, error)
	DeleteSession(ctx context.Context, sid string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// SessionManager issues and checks the session cookie.
type SessionManager struct {
	store      SessionStore
	secret     []byte
	ttl        time.Duration
	cookieName string
	env        config.Environment
	now        func() time.Time
}

func NewSessionManager(store SessionStore, cfg config.AuthConfig) *SessionManager {
	return &SessionManager{
		store:      store,
		secret:     []byte(cfg.SessionSecret),
		ttl:        cfg.SessionTTL,
		cookieName: cfg.CookieName,
		env:        config.NewEnvironment(cfg),
		now:        time.Now,
	}
}

// Start creates a session row for userID and sets the cookie on w.
func (m *SessionManager) Start(ctx context.Context, w http.ResponseWriter, userID string) (*models.Session, error) {
	sid, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	expires := m.now().Add(m.ttl).UTC()
	session := &models.Session{SID: sid, UserID: userID, Expire: expires}
	if err := m.store.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	token, err := CreateToken(m.secret, sid, userID, expires)
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, m.cookie(token, int(m.ttl.Seconds()), expires))
	return session, nil
}

// Resolve returns the live session named by the request cookie.
func (m *SessionManager) Resolve(ctx context.Context, r *http.Request) (*models.Session, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	claims, err := VerifyToken(m.secret, cookie.Value)
	if err != nil {
		return nil, err
	}

	session, err := m.store.GetSession(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	if session.UserID != claims.Subject {
		return nil, ErrInvalidToken
	}
	return session, nil
}

// End deletes the request's session, if any, and clears the cookie.
func (m *SessionManager) End(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	defer http.SetCookie(w, m.cookie("", -1, time.Unix(0, 0)))

	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	claims, err := VerifyToken(m.secret, cookie.Value)
	if err != nil {
		return nil
	}
	return m.store.DeleteSession(ctx, claims.ID)
}

func (m *SessionManager) cookie(value string, maxAge int, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
		Expires:  expires,
	}
	if !m.env.IsDevelopment {
		c.Domain = m.env.Domain
	}
	return c
}
