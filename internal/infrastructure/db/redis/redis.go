// Package redis adapts go-redis to the cache.Store contract. The cache tier
// is optional: when no address is configured the services run without it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// ConnectOptional returns nil when no address is configured (caching
// disabled) or when the tier is unreachable at startup. The cache is
// advisory, so neither case stops the service.
func ConnectOptional(ctx context.Context, cfg Config, log zerolog.Logger) *redis.Client {
	if cfg.Addr == "" {
		log.Info().Msg("no cache tier configured, running without caching")
		return nil
	}

	client, err := Connect(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("cache tier unreachable, running without caching")
		return nil
	}

	log.Info().Str("addr", cfg.Addr).Msg("connected to redis")
	return client
}
