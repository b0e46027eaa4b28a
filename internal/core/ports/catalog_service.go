package ports

import (
	"context"

	"github.com/shopstack/commerce-system/internal/core/domain"
)

// CatalogService defines the product catalog use cases.
type CatalogService interface {
	// List serves the cached product listing, falling back to the store.
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	// Add inserts a product and invalidates the listing cache before
	// returning the created record.
	Add(ctx context.Context, name string, price float64) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// SeedDefaults populates the catalog with the default product set when
	// the collection is empty.
	SeedDefaults(ctx context.Context) error
}
