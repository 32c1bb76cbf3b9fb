package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"golang.org/x/oauth2"

	"github.com/andrewpaige1/wisdom-compass-api/config"
	"github.com/andrewpaige1/wisdom-compass-api/models"
)

var (
	ErrBearerDisabled = errors.New("bearer tokens are not accepted")
	ErrMissingIDToken = errors.New("token response has no id_token")
)

// TokenValidator is satisfied by *validator.Validator.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (interface{}, error)
}

// CustomClaims are the OIDC profile claims we copy onto the local user.
type CustomClaims struct {
	Email      string `json:"email"`
	Nickname   string `json:"nickname"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

func (c *CustomClaims) Validate(ctx context.Context) error {
	return nil
}

func newCustomClaims() validator.CustomClaims {
	return &CustomClaims{}
}

// Identity is a verified person as described by the identity provider.
type Identity struct {
	Subject    string
	Email      string
	Nickname   string
	GivenName  string
	FamilyName string
	Picture    string
}

// IdentityFromClaims reads the result of TokenValidator.ValidateToken.
func IdentityFromClaims(v interface{}) (*Identity, error) {
	claims, ok := v.(*validator.ValidatedClaims)
	if !ok || claims == nil || claims.RegisteredClaims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	id := &Identity{Subject: claims.RegisteredClaims.Subject}
	if custom, ok := claims.CustomClaims.(*CustomClaims); ok && custom != nil {
		id.Email = custom.Email
		id.Nickname = custom.Nickname
		id.GivenName = custom.GivenName
		id.FamilyName = custom.FamilyName
		id.Picture = custom.Picture
		if id.GivenName == "" && id.FamilyName == "" && custom.Name != "" {
			id.GivenName, id.FamilyName, _ = strings.Cut(custom.Name, " ")
		}
	}
	if id.GivenName == "" {
		id.GivenName = id.Nickname
	}
	return id, nil
}

// User maps the identity onto a user row.
func (i *Identity) User() models.User {
	u := models.User{
		ID:              i.Subject,
		FirstName:       i.GivenName,
		LastName:        i.FamilyName,
		ProfileImageURL: i.Picture,
	}
	if i.Email != "" {
		email := i.Email
		u.Email = &email
	}
	return u
}

// Provider talks to the external OpenID Connect identity provider.
type Provider struct {
	OAuth        *oauth2.Config
	IDTokens     TokenValidator
	AccessTokens TokenValidator
	LogoutURL    string
	Audience     string
}

// NewProvider wires the provider for cfg. Signing keys come from the
// issuer's JWKS and are cached. Bearer access tokens are accepted only when
// an API audience is configured.
func NewProvider(cfg config.AuthConfig, publicURL string) (*Provider, error) {
	issuer, err := url.Parse(cfg.IssuerURL())
	if err != nil {
		return nil, fmt.Errorf("parse issuer url: %w", err)
	}

	keys := jwks.NewCachingProvider(issuer, 5*time.Minute)

	idTokens, err := validator.New(
		keys.KeyFunc,
		validator.RS256,
		issuer.String(),
		[]string{cfg.ClientID},
		validator.WithCustomClaims(newCustomClaims),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("set up id token validator: %w", err)
	}

	p := &Provider{
		OAuth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  issuer.String() + "authorize",
				TokenURL: issuer.String() + "oauth/token",
			},
			RedirectURL: strings.TrimSuffix(publicURL, "/") + "/api/callback",
			Scopes:      []string{"openid", "profile", "email"},
		},
		IDTokens:  idTokens,
		LogoutURL: issuer.String() + "v2/logout",
		Audience:  cfg.Audience,
	}

	if cfg.Audience != "" {
		accessTokens, err := validator.New(
			keys.KeyFunc,
			validator.RS256,
			issuer.String(),
			[]string{cfg.Audience},
			validator.WithCustomClaims(newCustomClaims),
			validator.WithAllowedClockSkew(time.Minute),
		)
		if err != nil {
			return nil, fmt.Errorf("set up access token validator: %w", err)
		}
		p.AccessTokens = accessTokens
	}
	return p, nil
}

// AuthCodeURL is where the browser goes to log in.
func (p *Provider) AuthCodeURL(state string) string {
	var opts []oauth2.AuthCodeOption
	if p.Audience != "" {
		opts = append(opts, oauth2.SetAuthURLParam("audience", p.Audience))
	}
	return p.OAuth.AuthCodeURL(state, opts...)
}

// Exchange trades an authorization code for a verified identity.
func (p *Provider) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := p.OAuth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, ErrMissingIDToken
	}

	claims, err := p.IDTokens.ValidateToken(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("validate id token: %w", err)
	}
	return IdentityFromClaims(claims)
}

// ValidateAccessToken verifies a bearer token issued for this API.
func (p *Provider) ValidateAccessToken(ctx context.Context, token string) (*validator.ValidatedClaims, error) {
	if p.AccessTokens == nil {
		return nil, ErrBearerDisabled
	}
	v, err := p.AccessTokens.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}
	claims, ok := v.(*validator.ValidatedClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return claims, nil
}

// LogoutRedirect is the provider URL that ends the upstream session and
// sends the browser back to returnTo.
func (p *Provider) LogoutRedirect(returnTo string) string {
	q := url.Values{}
	q.Set("client_id", p.OAuth.ClientID)
	if returnTo != "" {
		q.Set("returnTo", returnTo)
	}
	return p.LogoutURL + "?" + q.Encode()
}
