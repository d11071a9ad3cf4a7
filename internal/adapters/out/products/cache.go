package products

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// CachedClient decorates a ProductClient with a Redis read-through cache.
// Cache failures never fail a lookup: a broken cache degrades to direct
// catalog calls with a warning in the log.
type CachedClient struct {
	inner  ports.ProductClient
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedClient wraps inner with a Redis cache at the given address.
func NewCachedClient(
	inner ports.ProductClient,
	addr string,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedClient {
	return &CachedClient{
		inner:  inner,
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
		logger: logger.With("component", "product_cache"),
	}
}

// cachedProduct is the cache entry format. Only found, well-formed
// products are cached; not-found and unavailable results are not, so a
// product becoming sellable is visible immediately.
type cachedProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"isAvailable"`
}

// GetByID serves from cache when possible, falling back to the inner
// client and populating the cache on the way out.
func (c *CachedClient) GetByID(ctx context.Context, productID kernel.UUID) (*ports.Product, error) {
	key := cacheKey(productID)

	raw, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		product, decodeErr := decodeCached(raw)
		if decodeErr == nil {
			return product, nil
		}
		c.logger.WarnContext(ctx, "discarding malformed cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		c.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}

	product, err := c.inner.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.IsAvailable {
		c.store(ctx, key, product)
	}

	return product, nil
}

func (c *CachedClient) store(ctx context.Context, key string, product *ports.Product) {
	data, err := json.Marshal(cachedProduct{
		ID:          product.ID.String(),
		Name:        product.Name,
		Price:       product.Price.Amount(),
		IsAvailable: product.IsAvailable,
	})
	if err != nil {
		return
	}

	if err = c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}

func decodeCached(raw string) (*ports.Product, error) {
	var entry cachedProduct
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromString(entry.ID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(entry.Price)
	if err != nil {
		return nil, err
	}

	return &ports.Product{
		ID:          id,
		Name:        entry.Name,
		Price:       price,
		IsAvailable: entry.IsAvailable,
	}, nil
}

func cacheKey(productID kernel.UUID) string {
	return fmt.Sprintf("orders:product:%s", productID.String())
}
