package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopstack/commerce-system/internal/api/metrics"
	"github.com/shopstack/commerce-system/internal/cache"
	"github.com/shopstack/commerce-system/internal/core/domain"
	"github.com/shopstack/commerce-system/internal/core/ports"
)

const (
	productsCacheKey = "products"
	listingTTL       = 30 * time.Second
)

// CatalogService implements the product catalog: a cached listing plus
// admin-gated mutations that invalidate the listing before returning.
type CatalogService struct {
	repo  ports.ProductRepository
	cache *cache.Accessor
	log   zerolog.Logger
}

func NewCatalogService(repo ports.ProductRepository, accessor *cache.Accessor, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, cache: accessor, log: log}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return cache.ReadThrough(ctx, s.cache, productsCacheKey, listingTTL, s.repo.FindAll)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) Add(ctx context.Context, name string, price float64) (*domain.Product, error) {
	if name == "" || price < 0 {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.repo.Insert(ctx, &domain.Product{Name: name, Price: price})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, productsCacheKey)
	metrics.ProductsCreatedTotal.Inc()
	s.log.Info().Str("product_id", created.ID).Str("name", name).Msg("product added")
	return created, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, productsCacheKey)
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// SeedDefaults inserts the default catalog when the collection is empty.
// Callers must not let a seeding failure abort startup.
func (s *CatalogService) SeedDefaults(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	if err := s.repo.InsertMany(ctx, defaultProducts()); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, productsCacheKey)
	s.log.Info().Int("count", len(defaultProducts())).Msg("default catalog seeded")
	return nil
}

func defaultProducts() []domain.Product {
	return []domain.Product{
		{Name: "Wireless Mouse", Price: 19.99},
		{Name: "Mechanical Keyboard", Price: 59.99},
		{Name: "USB-C Hub", Price: 24.99},
		{Name: `27" Monitor`, Price: 189.99},
		{Name: "Laptop Stand", Price: 29.99},
		{Name: "Noise-Canceling Headphones", Price: 129.99},
		{Name: "Webcam 1080p", Price: 39.99},
		{Name: "External SSD 1TB", Price: 99.99},
		{Name: "Portable Charger", Price: 22.99},
		{Name: "Bluetooth Speaker", Price: 34.99},
		{Name: "Desk Lamp", Price: 18.99},
		{Name: "Gaming Chair", Price: 149.99},
		{Name: "Microphone USB", Price: 49.99},
		{Name: "HDMI Cable", Price: 8.99},
		{Name: "Ethernet Switch", Price: 26.99},
		{Name: "Smart Plug", Price: 12.99},
		{Name: "Action Camera", Price: 79.99},
		{Name: "VR Headset", Price: 249.99},
		{Name: "Graphics Tablet", Price: 69.99},
		{Name: "LED Strip Lights", Price: 16.99},
	}
}
