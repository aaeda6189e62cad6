// Package querycache is the request-deduplicating snapshot cache every
// screen reads through. Snapshots are stored as marshaled JSON keyed by
// query identity; concurrent loads of the same key are collapsed to a
// single upstream call.
package querycache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// LoadFunc fetches a fresh snapshot on cache miss.
type LoadFunc func(ctx context.Context) (any, error)

type Cache struct {
	store  Store
	sf     singleflight.Group
	logger *zap.Logger
}

func New(store Store, logger ...*zap.Logger) *Cache {
	l := zap.L().Named("querycache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("querycache")
	}

	return &Cache{store: store, logger: l}
}

// Fetch decodes the snapshot under key into dest, loading it at most
// once across concurrent callers on a miss. Load errors propagate to
// every waiter and nothing is cached. Store failures degrade to a
// direct load; they are logged, never surfaced.
func (c *Cache) Fetch(ctx context.Context, key string, ttl time.Duration, dest any, load LoadFunc) error {
	raw, hit, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		if err := json.Unmarshal(raw, dest); err == nil {
			return nil
		}
		// Undecodable entry: treat as a miss and overwrite below.
		c.logger.Warn("cache entry corrupt, reloading", zap.String("key", key))
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		fresh, err := load(ctx)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(fresh)
		if err != nil {
			return nil, err
		}

		if err := c.store.Set(ctx, key, data, ttl); err != nil {
			c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
		return data, nil
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(v.([]byte), dest)
}

// Invalidate drops the given snapshots. Mutations and the catalog
// change consumer call this; the next read refetches.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		c.logger.Error("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
		return
	}
	c.logger.Debug("cache invalidated", zap.Strings("keys", keys))
}
