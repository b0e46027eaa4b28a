// Command auth-service runs the authentication service: registration,
// login, token refresh, and the admin-only user directory.
package main

import (
	"context"
	"os"

	"github.com/shopstack/commerce-system/internal/api"
	"github.com/shopstack/commerce-system/internal/core/service"
	"github.com/shopstack/commerce-system/internal/core/token"
	"github.com/shopstack/commerce-system/internal/infrastructure/config"
	mongodb "github.com/shopstack/commerce-system/internal/infrastructure/db/mongo"
	redisdb "github.com/shopstack/commerce-system/internal/infrastructure/db/redis"
	"github.com/shopstack/commerce-system/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadAuth(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() { _ = client.Disconnect(ctx) }()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	// Redis is optional for this service; it holds no cached views but the
	// readiness probe reports on it when configured.
	rdb := redisdb.ConnectOptional(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}, log)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure user indexes")
	}

	codec := token.NewCodec(cfg.JWTSecret)
	svc := service.NewAuthService(repo, codec, cfg.TokenTTL, service.AdminSeed{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Role:     cfg.AdminRole,
	}, log)

	// Seeding failures must never abort startup.
	if err := svc.SeedAdmin(ctx); err != nil {
		log.Warn().Err(err).Msg("admin seeding failed")
	}

	e := api.NewAuthRouter(svc, codec, db, rdb, log)

	log.Info().Str("port", cfg.Port).Msg("starting auth service")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
