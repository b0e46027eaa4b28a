package ports

import (
	"context"

	"github.com/shopstack/commerce-system/internal/core/domain"
)

// ProductRepository defines persistence for catalog products.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	// FindByID yields domain.ErrInvalidID for a malformed id and
	// domain.ErrProductNotFound when no document matches.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []domain.Product) error
}
