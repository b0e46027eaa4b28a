package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopstack/commerce-system/internal/api/metrics"
	"github.com/shopstack/commerce-system/internal/cache"
	"github.com/shopstack/commerce-system/internal/core/domain"
	"github.com/shopstack/commerce-system/internal/core/ports"
)

const ordersCachePrefix = "orders:"

// OrderService implements subject-scoped orders. Product data is read
// synchronously from the catalog service at creation time and embedded as
// an immutable snapshot.
type OrderService struct {
	repo   ports.OrderRepository
	reader ports.ProductReader
	cache  *cache.Accessor
	log    zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, reader ports.ProductReader, accessor *cache.Accessor, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, reader: reader, cache: accessor, log: log}
}

func (s *OrderService) Create(ctx context.Context, subject, productID string) (*domain.Order, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}

	product, err := s.reader.Get(ctx, productID)
	if err != nil {
		var statusErr *domain.UpstreamStatusError
		switch {
		case errors.Is(err, domain.ErrUpstreamUnavailable):
			metrics.UpstreamRequestsTotal.WithLabelValues("unavailable").Inc()
		case errors.As(err, &statusErr):
			metrics.UpstreamRequestsTotal.WithLabelValues("not_found").Inc()
		}
		s.log.Warn().Err(err).Str("product_id", productID).Msg("catalog lookup failed")
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("ok").Inc()

	order, err := s.repo.Insert(ctx, &domain.Order{
		UserID:    subject,
		ProductID: productID,
		Product: domain.ProductSnapshot{
			Name:  product.Name,
			Price: product.Price,
		},
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, ordersCachePrefix+subject)
	metrics.OrdersCreatedTotal.Inc()
	s.log.Info().Str("order_id", order.ID).Str("subject", subject).Str("product_id", productID).Msg("order created")
	return order, nil
}

func (s *OrderService) List(ctx context.Context, subject string) ([]domain.Order, error) {
	return cache.ReadThrough(ctx, s.cache, ordersCachePrefix+subject, listingTTL, func(ctx context.Context) ([]domain.Order, error) {
		return s.repo.FindBySubject(ctx, subject)
	})
}

func (s *OrderService) Delete(ctx context.Context, subject, orderID string) error {
	// The repository matches id and owner together, so an attempt on
	// another subject's order is indistinguishable from a missing order.
	if err := s.repo.DeleteOwned(ctx, orderID, subject); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, ordersCachePrefix+subject)
	s.log.Info().Str("order_id", orderID).Str("subject", subject).Msg("order deleted")
	return nil
}
