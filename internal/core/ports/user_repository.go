package ports

import (
	"context"

	"github.com/shopstack/commerce-system/internal/core/domain"
)

// UserRepository defines persistence for user credentials and roles.
type UserRepository interface {
	// Insert stores a new user and returns it with its assigned ID.
	// A duplicate username yields domain.ErrUserExists.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID yields domain.ErrInvalidID when id is not a well-formed key.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id, role string) error
}
