package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopsync/commerce-api/internal/api/handler"
	"github.com/shopsync/commerce-api/internal/api/middleware"
	"github.com/shopsync/commerce-api/internal/core/domain"
	"github.com/shopsync/commerce-api/internal/core/service"
	"github.com/shopsync/commerce-api/internal/infrastructure/config"
	mongostore "github.com/shopsync/commerce-api/internal/infrastructure/db/mongo"
	"github.com/shopsync/commerce-api/internal/infrastructure/queue"
	"github.com/shopsync/commerce-api/internal/pkg/ratelimit"
	"github.com/shopsync/commerce-api/internal/pkg/shopify"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The context governs the lifetime of background workers started here.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("commerce"))

	// --- Repositories ---
	userRepo := mongostore.NewUserRepository(db)
	roleRepo := mongostore.NewRoleRepository(db)
	keyRepo := mongostore.NewAPIKeyRepository(db)
	productRepo := mongostore.NewProductRepository(db)

	// --- Background workers ---
	usageRecorder := queue.NewUsageRecorder(keyRepo, log)
	usageRecorder.Start(ctx)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, roleRepo, tokenService, log)
	keyService := service.NewAPIKeyService(keyRepo, userRepo, roleRepo, usageRecorder, log)
	shopifyClient := shopify.NewClient(cfg.Shopify.ShopName, cfg.Shopify.AccessToken)
	productService := service.NewProductService(productRepo, shopifyClient, log)
	orderService := service.NewOrderService(productRepo, log)

	// --- Login rate limiter ---
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Backend == "redis" && rdb != nil {
		limiter = ratelimit.NewRedis(rdb, cfg.RateLimit.Window)
	} else {
		limiter = ratelimit.NewMemory(cfg.RateLimit.Window)
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userRepo, roleRepo, authService)
	keyHandler := handler.NewAPIKeyHandler(keyService)
	productHandler := handler.NewProductHandler(productService)
	webhookHandler := handler.NewWebhookHandler(orderService, cfg.Shopify.WebhookSecret, log)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, middleware.LoginRateLimit(limiter, log))
	e.POST("/webhooks/shopify-sales", webhookHandler.ShopifySales)

	// --- Authenticated routes ---
	auth := middleware.Auth(authService, keyService)

	users := e.Group("/users", auth)
	users.GET("/me", userHandler.Me, middleware.RequireCapability(domain.CapGetMyUser))
	users.GET("", userHandler.List,
		middleware.RequireRoles(domain.RoleAdmin),
		middleware.RequireCapability(domain.CapGetUsers))
	users.POST("/change-password", userHandler.ChangePassword)

	keys := e.Group("/api-keys", auth)
	keys.POST("", keyHandler.Create)
	keys.GET("", keyHandler.List)
	keys.DELETE("/:id", keyHandler.Delete)

	products := e.Group("", auth)
	products.POST("/products", productHandler.Create,
		middleware.RequireRoles(domain.RoleAdmin, domain.RolePremium),
		middleware.RequireCapability(domain.CapPostProducts))
	products.GET("/products", productHandler.List)
	products.GET("/my-products", productHandler.ListMine)
	products.GET("/my-bestsellers", productHandler.ListBestsellers,
		middleware.RequireRoles(domain.RolePremium),
		middleware.RequireCapability(domain.CapGetBestsellers))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
