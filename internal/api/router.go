// Package api wires the HTTP surface: routes, middleware, error
// rendering and the dependency graph behind the handlers.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/domainpanel/backend/internal/api/handler"
	"github.com/domainpanel/backend/internal/api/middleware"
	"github.com/domainpanel/backend/internal/core/domain"
	"github.com/domainpanel/backend/internal/core/service"
	"github.com/domainpanel/backend/internal/infrastructure/config"
	mongodb "github.com/domainpanel/backend/internal/infrastructure/db/mongo"
	redisdb "github.com/domainpanel/backend/internal/infrastructure/db/redis"
)

// NewRouter assembles the full echo application: repositories, caches,
// services, handlers and routes.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("domainpanel"))

	// Repositories and cache.
	userRepo := mongodb.NewUserRepository(db)
	domainRepo := mongodb.NewDomainRepository(db)
	userCache := redisdb.NewUserCache(rdb)

	// Services.
	tokens := service.NewTokenManager(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	authService := service.NewAuthService(userRepo, tokens, userCache, log)
	userService := service.NewUserService(userRepo, userCache, log)
	domainService := service.NewDomainService(domainRepo, log)

	// Handlers.
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(userService)
	domainHandler := handler.NewDomainHandler(domainService)
	healthHandler := handler.NewHealthHandler()
	readyHandler := handler.NewReadinessHandler(db, rdb)

	requireAuth := middleware.Auth(tokens)
	requireAdmin := middleware.RequireRoles(domain.RoleAdmin)

	// Public surface.
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readyHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	auth := e.Group("/api/v1/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Admin-only user directory.
	admin := e.Group("/api/v1/admin", requireAuth, requireAdmin)
	admin.POST("/create", adminHandler.Create)
	admin.GET("", adminHandler.List)
	admin.PUT("/:id", adminHandler.Update)
	admin.DELETE("/:id", adminHandler.Delete)

	// Self-service domain portfolio.
	user := e.Group("/api/v1/user", requireAuth)
	user.GET("/domains", domainHandler.List)
	user.POST("/domains", domainHandler.Add)
	user.PATCH("/domains/:id", domainHandler.UpdateStatus)

	return e
}
