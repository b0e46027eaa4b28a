// Package api wires the echo routers for the three services. All routers
// share the same middleware stack, error handling, and observability
// endpoints; only the routes differ.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopstack/commerce-system/internal/api/handler"
	"github.com/shopstack/commerce-system/internal/api/middleware"
	"github.com/shopstack/commerce-system/internal/core/domain"
	"github.com/shopstack/commerce-system/internal/core/ports"
	"github.com/shopstack/commerce-system/internal/core/token"
	healthhandlers "github.com/shopstack/commerce-system/internal/infrastructure/http/handlers"
)

func newEcho(name string, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware(name))

	e.GET("/metrics", echoprometheus.NewHandler())

	health := healthhandlers.NewHealthHandler()
	ready := healthhandlers.NewReadinessHandler(db, rdb)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", ready.Readiness)

	return e
}

// NewAuthRouter builds the authentication service router.
func NewAuthRouter(svc ports.AuthService, codec *token.Codec, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := newEcho("auth_service", db, rdb, log)

	h := handler.NewAuthHandler(svc)
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
	e.POST("/refresh", h.Refresh)
	e.GET("/users", h.ListUsers, middleware.Auth(codec), middleware.RBAC(domain.RoleAdmin))

	return e
}

// NewCatalogRouter builds the catalog service router. Reads are public;
// mutations require an admin token.
func NewCatalogRouter(svc ports.CatalogService, codec *token.Codec, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := newEcho("catalog_service", db, rdb, log)

	h := handler.NewProductHandler(svc)
	e.GET("/products", h.List)
	e.GET("/products/:id", h.Get)

	admin := []echo.MiddlewareFunc{middleware.Auth(codec), middleware.RBAC(domain.RoleAdmin)}
	e.POST("/products", h.Add, admin...)
	e.DELETE("/products/:id", h.Delete, admin...)

	return e
}

// NewOrderRouter builds the order service router. Every route requires a
// valid token of any role.
func NewOrderRouter(svc ports.OrderService, codec *token.Codec, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := newEcho("order_service", db, rdb, log)

	h := handler.NewOrderHandler(svc)
	auth := middleware.Auth(codec)
	e.POST("/orders", h.Create, auth)
	e.GET("/orders", h.List, auth)
	e.DELETE("/orders/:id", h.Delete, auth)

	return e
}
