package ports

import (
	"context"

	"github.com/shopstack/commerce-system/internal/core/domain"
)

// OrderRepository defines persistence for orders. All queries are scoped to
// an owning subject; there is no cross-subject access path.
type OrderRepository interface {
	Insert(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindBySubject(ctx context.Context, subject string) ([]domain.Order, error)
	// DeleteOwned deletes the order only when both id and owner match.
	// An ownership mismatch is indistinguishable from a missing order:
	// both yield domain.ErrOrderNotFound.
	DeleteOwned(ctx context.Context, id, subject string) error
}
