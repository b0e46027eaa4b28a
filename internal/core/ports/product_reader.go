package ports

import (
	"context"

	"github.com/shopstack/commerce-system/internal/core/domain"
)

// ProductReader is the order service's view of the catalog service. It is an
// injected collaborator so tests can substitute a fake without a network
// dependency. Implementations map transport failures to
// domain.ErrUpstreamUnavailable and non-success responses to
// *domain.UpstreamStatusError.
type ProductReader interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
}
