package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"go.uber.org/zap"

	"github.com/andrewpaige1/wisdom-compass-api/auth"
	"github.com/andrewpaige1/wisdom-compass-api/models"
	"github.com/andrewpaige1/wisdom-compass-api/storage"
)

// UserStore is the part of storage the middleware needs.
type UserStore interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpsertUser(ctx context.Context, user models.User) (*models.User, error)
}

// syncUser ensures the token's subject exists in the DB. Existing rows only
// take profile fields that are non-empty and changed.
func syncUser(ctx context.Context, users UserStore, claims *validator.ValidatedClaims, logger *zap.Logger) (*models.User, error) {
	identity, err := auth.IdentityFromClaims(claims)
	if err != nil {
		return nil, err
	}
	incoming := identity.User()

	user, err := users.GetUser(ctx, identity.Subject)
	if errors.Is(err, storage.ErrNotFound) {
		created, err := users.UpsertUser(ctx, incoming)
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		logger.Info("Created new user", zap.String("user_id", created.ID))
		return created, nil
	}
	if err != nil {
		return nil, err
	}

	changed := false
	if incoming.Email != nil && (user.Email == nil || *user.Email != *incoming.Email) {
		user.Email = incoming.Email
		changed = true
	}
	if incoming.FirstName != "" && user.FirstName != incoming.FirstName {
		user.FirstName = incoming.FirstName
		changed = true
	}
	if incoming.LastName != "" && user.LastName != incoming.LastName {
		user.LastName = incoming.LastName
		changed = true
	}
	if incoming.ProfileImageURL != "" && user.ProfileImageURL != incoming.ProfileImageURL {
		user.ProfileImageURL = incoming.ProfileImageURL
		changed = true
	}
	if !changed {
		return user, nil
	}

	updated, err := users.UpsertUser(ctx, *user)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	logger.Info("Updated user profile", zap.String("user_id", updated.ID))
	return updated, nil
}
