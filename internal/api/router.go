package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/campuscompass/guidance-system/docs"
	"github.com/campuscompass/guidance-system/internal/api/handler"
	"github.com/campuscompass/guidance-system/internal/api/middleware"
	"github.com/campuscompass/guidance-system/internal/core/domain"
	"github.com/campuscompass/guidance-system/internal/core/service"
	mongodb "github.com/campuscompass/guidance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/campuscompass/guidance-system/internal/infrastructure/db/redis"
)

// Deps carries everything the router needs to wire the application.
type Deps struct {
	Mongo   *mongo.Database
	Redis   *redis.Client // optional; nil disables the recommendation cache
	Tokens  *service.TokenService
	Catalog []domain.Resource
	Logger  zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("guidance"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(deps.Mongo)
	accountService := service.NewAccountService(accountRepo, deps.Tokens, deps.Catalog, deps.Logger)

	var cache service.RecommendationCache
	if deps.Redis != nil {
		cache = redisdb.NewRecommendationCache(deps.Redis)
	}
	resourceService := service.NewResourceService(deps.Catalog, cache, deps.Logger)
	chatService := service.NewChatService(deps.Logger)

	authHandler := handler.NewAuthHandler(accountService)
	profileHandler := handler.NewProfileHandler(accountService)
	resourceHandler := handler.NewResourceHandler(resourceService)
	chatHandler := handler.NewChatHandler(chatService)
	authRequired := middleware.Auth(deps.Tokens)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Authenticated routes ---
	e.GET("/profile", profileHandler.Get, authRequired)
	e.PUT("/profile", profileHandler.Update, authRequired)
	e.GET("/resources", resourceHandler.List, authRequired)
	e.POST("/rate", profileHandler.Rate, authRequired)
	e.POST("/chat", chatHandler.Send, authRequired)

	// --- Health probes / operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
