package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/campuscompass/guidance-system/internal/api"
	"github.com/campuscompass/guidance-system/internal/core/service"
	"github.com/campuscompass/guidance-system/internal/infrastructure/catalog"
	"github.com/campuscompass/guidance-system/internal/infrastructure/config"
	mongodb "github.com/campuscompass/guidance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/campuscompass/guidance-system/internal/infrastructure/db/redis"
	"github.com/campuscompass/guidance-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Student Guidance API
// @version      1.0
// @description  Account registration/login, profiles, learning paths, resource recommendations, and a scripted chatbot.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; config failures (including a missing
		// JWT_SECRET) must still abort loudly.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	tokens, err := service.NewTokenService(cfg.JWTSecret, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("token service init failed")
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewAccountRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	// Redis only backs the recommendation cache: run degraded without it.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, recommendation caching disabled")
		rdb = nil
	} else {
		defer func() { _ = rdb.Close() }()
	}

	resources, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}
	log.Info().Int("resources", len(resources)).Msg("catalog loaded")

	e := api.NewRouter(api.Deps{
		Mongo:   db,
		Redis:   rdb,
		Tokens:  tokens,
		Catalog: resources,
		Logger:  log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
