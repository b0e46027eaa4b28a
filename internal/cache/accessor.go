// Package cache implements the cache-aside discipline shared by the catalog
// and order services: read-through on the query path, best-effort
// invalidation on every mutation. The cache tier is advisory: it is never
// authoritative and its failures never fail a request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopstack/commerce-system/internal/api/metrics"
)

// ErrMiss is returned by Store.Get when the key is absent.
var ErrMiss = errors.New("cache miss")

// Store is the minimal cache-tier contract. Every call is independently
// fallible; callers treat all failures as a miss.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Accessor wraps a Store with the read-through/invalidate protocol.
// A nil Store disables caching entirely: every read goes straight to the
// loader and invalidations are no-ops. That is the degraded mode used when
// no cache tier is configured.
type Accessor struct {
	store Store
	log   zerolog.Logger
}

func NewAccessor(store Store, log zerolog.Logger) *Accessor {
	return &Accessor{store: store, log: log}
}

// Enabled reports whether a cache tier is configured.
func (a *Accessor) Enabled() bool {
	return a.store != nil
}

// ReadThrough returns the cached value under key when present and decodable,
// otherwise falls back to loader and best-effort populates the cache with
// the result under ttl. A corrupt payload is deleted before falling back so
// the next read is a clean miss. Loader errors are the only errors returned.
func ReadThrough[T any](ctx context.Context, a *Accessor, key string, ttl time.Duration, loader func(context.Context) (T, error)) (T, error) {
	if a.store != nil {
		raw, err := a.store.Get(ctx, key)
		switch {
		case err == nil:
			var v T
			if jsonErr := json.Unmarshal([]byte(raw), &v); jsonErr == nil {
				metrics.CacheReadsTotal.WithLabelValues(keyspace(key), "hit").Inc()
				return v, nil
			}
			// Undecodable payload: drop it so it cannot shadow the store.
			metrics.CacheReadsTotal.WithLabelValues(keyspace(key), "corrupt").Inc()
			a.log.Warn().Str("key", key).Msg("corrupt cache payload, invalidating")
			if delErr := a.store.Delete(ctx, key); delErr != nil {
				a.log.Warn().Err(delErr).Str("key", key).Msg("failed to delete corrupt cache entry")
			}
		case errors.Is(err, ErrMiss):
			metrics.CacheReadsTotal.WithLabelValues(keyspace(key), "miss").Inc()
		default:
			metrics.CacheReadsTotal.WithLabelValues(keyspace(key), "error").Inc()
			a.log.Warn().Err(err).Str("key", key).Msg("cache get failed, falling back to store")
		}
	}

	v, err := loader(ctx)
	if err != nil {
		return v, err
	}

	if a.store != nil {
		if raw, jsonErr := json.Marshal(v); jsonErr == nil {
			if setErr := a.store.SetWithTTL(ctx, key, string(raw), ttl); setErr != nil {
				a.log.Warn().Err(setErr).Str("key", key).Msg("cache populate failed")
			}
		}
	}
	return v, nil
}

// Invalidate deletes key best-effort. It is called synchronously by every
// mutation before success is reported, so after a successful delete the next
// read is a guaranteed miss; after a failed delete staleness is bounded by
// the entry's TTL.
func (a *Accessor) Invalidate(ctx context.Context, key string) {
	if a.store == nil {
		return
	}
	if err := a.store.Delete(ctx, key); err != nil {
		metrics.CacheInvalidationsTotal.WithLabelValues(keyspace(key), "error").Inc()
		a.log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
		return
	}
	metrics.CacheInvalidationsTotal.WithLabelValues(keyspace(key), "ok").Inc()
}

// keyspace maps "orders:42" to "orders" for metric labels.
func keyspace(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
