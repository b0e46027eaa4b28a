package ports

import (
	"context"

	"github.com/shopstack/commerce-system/internal/core/domain"
)

// AuthService defines the authentication use cases.
type AuthService interface {
	// Register creates a user with role "user" and returns its ID.
	// No token is issued on registration.
	Register(ctx context.Context, username, password string) (string, error)
	// Login verifies credentials and issues a token carrying the stored role.
	Login(ctx context.Context, username, password string) (token, role string, err error)
	// Refresh issues a fresh token with a full TTL from a still-valid token.
	// The old token is not revoked; it remains valid until its own expiry.
	Refresh(ctx context.Context, rawToken string) (token, role string, err error)
	// ListUsers returns every user's id, username, and role.
	ListUsers(ctx context.Context) ([]domain.User, error)
	// SeedAdmin idempotently ensures the configured admin account exists
	// with the configured role.
	SeedAdmin(ctx context.Context) error
}
