// Package cache provides a keyed response cache over memcached with
// singleflight request coalescing, used to serve repeated listing reads
// without hammering the upstream API.
package cache

import (
	"context"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/singleflight"
)

var tracer = otel.Tracer("cache")

// Fetcher loads a fresh value when the cache has none.
type Fetcher func(ctx context.Context) ([]byte, error)

// Cache is a read-through byte cache. Concurrent misses on the same key are
// coalesced into a single upstream fetch.
type Cache interface {
	Fetch(ctx context.Context, key string, ttl time.Duration, fetch Fetcher) ([]byte, error)
	Invalidate(ctx context.Context, keys ...string)
}

type cache struct {
	mc    *memcache.Client
	group singleflight.Group
}

// NewCache creates a Cache backed by the given memcached client.
func NewCache(mc *memcache.Client) Cache {
	return &cache{
		mc: mc,
	}
}

func (c *cache) Fetch(ctx context.Context, key string, ttl time.Duration, fetch Fetcher) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Cache.Fetch")
	defer span.End()

	item, err := c.mc.Get(key)
	if err == nil {
		return item.Value, nil
	}
	if !errors.Is(err, memcache.ErrCacheMiss) {
		span.RecordError(err)
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		data, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		err = c.mc.Set(&memcache.Item{Key: key, Value: data, Expiration: int32(ttl.Seconds())})
		if err != nil {
			span.RecordError(err)
		}
		return data, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch "+key)
	}

	return value.([]byte), nil
}

func (c *cache) Invalidate(ctx context.Context, keys ...string) {
	_, span := tracer.Start(ctx, "Cache.Invalidate")
	defer span.End()

	for _, key := range keys {
		err := c.mc.Delete(key)
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			span.RecordError(err)
		}
	}
}
