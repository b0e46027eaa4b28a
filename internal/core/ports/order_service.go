package ports

import (
	"context"

	"github.com/shopstack/commerce-system/internal/core/domain"
)

// OrderService defines the order use cases. The subject argument is always
// the verified token subject, never client-supplied data.
type OrderService interface {
	// Create snapshots the product's current name and price into the order.
	Create(ctx context.Context, subject, productID string) (*domain.Order, error)
	List(ctx context.Context, subject string) ([]domain.Order, error)
	Delete(ctx context.Context, subject, orderID string) error
}
