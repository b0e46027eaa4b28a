// Command order-service runs the order service: subject-scoped orders with
// product snapshots taken synchronously from the catalog service.
package main

import (
	"context"
	"os"

	"github.com/shopstack/commerce-system/internal/api"
	"github.com/shopstack/commerce-system/internal/cache"
	"github.com/shopstack/commerce-system/internal/core/service"
	"github.com/shopstack/commerce-system/internal/core/token"
	"github.com/shopstack/commerce-system/internal/infrastructure/config"
	mongodb "github.com/shopstack/commerce-system/internal/infrastructure/db/mongo"
	redisdb "github.com/shopstack/commerce-system/internal/infrastructure/db/redis"
	"github.com/shopstack/commerce-system/internal/infrastructure/httpclient"
	"github.com/shopstack/commerce-system/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadOrder(ctx)
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

	rdb := redisdb.ConnectOptional(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB}, log)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	var store cache.Store
	if rdb != nil {
		store = redisdb.NewStore(rdb)
	}
	accessor := cache.NewAccessor(store, log)

	repo := mongodb.NewOrderRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure order indexes")
	}

	reader := httpclient.NewCatalogClient(cfg.CatalogURL, cfg.CatalogTimeout)
	svc := service.NewOrderService(repo, reader, accessor, log)

	codec := token.NewCodec(cfg.JWTSecret)
	e := api.NewOrderRouter(svc, codec, db, rdb, log)

	log.Info().Str("port", cfg.Port).Str("catalog_url", cfg.CatalogURL).Msg("starting order service")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
