package domain

import (
	"context"
	"time"
)

// ModelProvider is an external language-model backend. Implementations send
// one rendered prompt and return the raw completion text; the caller owns
// all validation of that text.
type ModelProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CatalogClient defines the read-only storefront product API surface
type CatalogClient interface {
	GetShop(ctx context.Context) (*ShopInfo, error)
	ListProducts(ctx context.Context, limit int) ([]CatalogProduct, error)
	GetProduct(ctx context.Context, id int64) (*CatalogProduct, error)
	SearchProducts(ctx context.Context, title string, limit int) ([]CatalogProduct, error)
}

// CacheRepository defines the interface for caching operations. Values are
// stored as JSON; Get decodes into dest and returns ErrCacheMiss when the key
// is absent or expired.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
