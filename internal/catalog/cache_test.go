package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-fieldsales/internal/catalog"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCacheGetSetJSON(t *testing.T) {
	client := newTestRedis(t)
	cache := catalog.NewCache(client, time.Minute)
	ctx := context.Background()

	var out map[string]string
	found, err := cache.GetJSON(ctx, "missing", &out)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, cache.SetJSON(ctx, "key", map[string]string{"a": "b"}))
	found, err = cache.GetJSON(ctx, "key", &out)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "b", out["a"])
}

func TestCachedSourceWarmsFromInner(t *testing.T) {
	client := newTestRedis(t)
	src := &catalog.CachedSource{
		Inner: staticSource(),
		Cache: catalog.NewCache(client, time.Minute),
	}
	ctx := context.Background()

	retailers, err := src.GetRetailers(ctx)
	require.NoError(t, err)
	require.Len(t, retailers, 2)

	// The warm pass populated the cache, so a fresh wrapper with a broken
	// inner source still serves the catalog.
	broken := &catalog.CachedSource{
		Inner: catalog.StaticSource{Err: errors.New("store down")},
		Cache: catalog.NewCache(client, time.Minute),
	}
	products, err := broken.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
}

func TestCachedSourceFallsThroughOnCacheMiss(t *testing.T) {
	src := &catalog.CachedSource{
		Inner: staticSource(),
		Cache: nil,
	}

	categories, err := src.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
}

func TestCachedSourcePropagatesInnerError(t *testing.T) {
	client := newTestRedis(t)
	src := &catalog.CachedSource{
		Inner: catalog.StaticSource{Err: errors.New("store down")},
		Cache: catalog.NewCache(client, time.Minute),
	}

	_, err := src.GetRetailers(context.Background())
	require.Error(t, err)
}
