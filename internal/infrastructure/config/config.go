// Package config loads service configuration from environment variables
// using go-envconfig. Each service has its own Load function because the
// three binaries share most settings but default to separate databases.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Base holds the settings shared by all three services.
type Base struct {
	Port      string `env:"PORT"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=secret"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://mongo:27017"`
	Database string `env:"MONGO_DB"`
}

// RedisConfig is optional: an empty Addr disables caching entirely, which is
// a valid degraded mode, not an error.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Auth configures the authentication service.
type Auth struct {
	Base

	TokenTTL      time.Duration `env:"TOKEN_TTL,      default=1h"`
	AdminUsername string        `env:"ADMIN_USERNAME, default=admin"`
	AdminPassword string        `env:"ADMIN_PASSWORD, default=admin123"`
	AdminRole     string        `env:"ADMIN_ROLE,     default=admin"`
}

// Catalog configures the product catalog service.
type Catalog struct {
	Base
}

// Order configures the order service.
type Order struct {
	Base

	CatalogURL     string        `env:"CATALOG_URL,     default=http://catalog-service:5001"`
	CatalogTimeout time.Duration `env:"CATALOG_TIMEOUT, default=5s"`
}

func LoadAuth(ctx context.Context) (*Auth, error) {
	var cfg Auth
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load auth config: %w", err)
	}
	applyDefaults(&cfg.Base, "5000", "auth_db")
	return &cfg, nil
}

func LoadCatalog(ctx context.Context) (*Catalog, error) {
	var cfg Catalog
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load catalog config: %w", err)
	}
	applyDefaults(&cfg.Base, "5001", "product_db")
	return &cfg, nil
}

func LoadOrder(ctx context.Context) (*Order, error) {
	var cfg Order
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load order config: %w", err)
	}
	applyDefaults(&cfg.Base, "5002", "order_db")
	return &cfg, nil
}

func applyDefaults(b *Base, port, database string) {
	if b.Port == "" {
		b.Port = port
	}
	if b.Mongo.Database == "" {
		b.Mongo.Database = database
	}
}
