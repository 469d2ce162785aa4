package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/evaly/backend/internal/domain"
)

// CatalogService wraps a request-scoped catalog client with read-through
// caching. The client is passed per call because credentials arrive with
// each request; only the cache outlives a request.
type CatalogService struct {
	cache    domain.CacheRepository
	cacheTTL time.Duration
	log      *logrus.Logger
}

// NewCatalogService creates a catalog service over the given cache
func NewCatalogService(cache domain.CacheRepository, cacheTTL time.Duration, log *logrus.Logger) *CatalogService {
	if cacheTTL == 0 {
		cacheTTL = 15 * time.Minute
	}

	return &CatalogService{
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// Connect verifies the shop credentials by fetching shop metadata. A typed
// error tells the caller whether the token was rejected, the record was
// missing, or the connection itself failed.
func (s *CatalogService) Connect(ctx context.Context, client domain.CatalogClient) (*domain.ShopInfo, error) {
	return client.GetShop(ctx)
}

// GetShop returns shop metadata, served from cache when fresh
func (s *CatalogService) GetShop(ctx context.Context, client domain.CatalogClient, shopDomain string) (*domain.ShopInfo, error) {
	key := fmt.Sprintf("catalog:%s:shop", shopDomain)

	var cached domain.ShopInfo
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	info, err := client.GetShop(ctx)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, info)
	return info, nil
}

// maxPageSize is the Admin API's cap on the limit parameter; values above it
// are rejected with a 400
const maxPageSize = 250

// ListProducts returns up to limit products, served from cache when fresh
func (s *CatalogService) ListProducts(ctx context.Context, client domain.CatalogClient, shopDomain string, limit int) ([]domain.CatalogProduct, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	key := fmt.Sprintf("catalog:%s:products:%d", shopDomain, limit)

	var cached []domain.CatalogProduct
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	products, err := client.ListProducts(ctx, limit)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, products)
	return products, nil
}

// GetProduct returns one product by id, served from cache when fresh
func (s *CatalogService) GetProduct(ctx context.Context, client domain.CatalogClient, shopDomain string, id int64) (*domain.CatalogProduct, error) {
	key := fmt.Sprintf("catalog:%s:product:%d", shopDomain, id)

	var cached domain.CatalogProduct
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	product, err := client.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, product)
	return product, nil
}

// SearchProducts searches by title. Results are not cached: queries are
// free-form and rarely repeat.
func (s *CatalogService) SearchProducts(ctx context.Context, client domain.CatalogClient, query string, limit int) ([]domain.CatalogProduct, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return client.SearchProducts(ctx, query, limit)
}

// store writes to the cache, logging failures without failing the request
func (s *CatalogService) store(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}
