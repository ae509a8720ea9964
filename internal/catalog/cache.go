package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache wraps Redis helpers for JSON payloads.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetJSON unmarshals a cached JSON payload into dst. It reports whether the key existed.
func (c *Cache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	if c == nil || c.client == nil || key == "" {
		return false, nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON serialises v as JSON and stores it with the configured TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, v any) error {
	if c == nil || c.client == nil || key == "" {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

const snapshotCacheKey = "catalog:snapshot"

type cachedCatalog struct {
	Retailers  []Retailer `json:"retailers"`
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
}

// CachedSource wraps a Source with a Redis warm cache so a process restart
// can rebuild the snapshot without hitting the backing store. Cache failures
// fall through to the inner source.
type CachedSource struct {
	Inner Source
	Cache *Cache

	loaded *cachedCatalog
}

// Warm fetches the whole catalog once, preferring the cache. Subsequent
// Get* calls serve the warmed copy.
func (s *CachedSource) Warm(ctx context.Context) error {
	if s.loaded != nil {
		return nil
	}
	var cached cachedCatalog
	if ok, err := s.Cache.GetJSON(ctx, snapshotCacheKey, &cached); err == nil && ok {
		s.loaded = &cached
		return nil
	}
	retailers, err := s.Inner.GetRetailers(ctx)
	if err != nil {
		return err
	}
	categories, err := s.Inner.GetCategories(ctx)
	if err != nil {
		return err
	}
	products, err := s.Inner.GetProducts(ctx)
	if err != nil {
		return err
	}
	s.loaded = &cachedCatalog{Retailers: retailers, Categories: categories, Products: products}
	_ = s.Cache.SetJSON(ctx, snapshotCacheKey, s.loaded)
	return nil
}

func (s *CachedSource) GetRetailers(ctx context.Context) ([]Retailer, error) {
	if err := s.Warm(ctx); err != nil {
		return nil, err
	}
	return s.loaded.Retailers, nil
}

func (s *CachedSource) GetCategories(ctx context.Context) ([]Category, error) {
	if err := s.Warm(ctx); err != nil {
		return nil, err
	}
	return s.loaded.Categories, nil
}

func (s *CachedSource) GetProducts(ctx context.Context) ([]Product, error) {
	if err := s.Warm(ctx); err != nil {
		return nil, err
	}
	return s.loaded.Products, nil
}
