package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/evaly/backend/config"
	httpDelivery "github.com/evaly/backend/internal/delivery/http"
	"github.com/evaly/backend/internal/domain"
	"github.com/evaly/backend/internal/infrastructure/cache"
	"github.com/evaly/backend/internal/infrastructure/provider"
	"github.com/evaly/backend/internal/logger"
	"github.com/evaly/backend/internal/usecase"
)

func main() {
	// Seed process env from a local .env when present; viper reads the rest
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.Server.LogLevel)

	log.WithFields(logrus.Fields{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"cache":       cfg.Cache.Type,
	}).Info("starting evaly backend v1.0.0")

	cacheRepo := buildCache(cfg, log)

	registry := provider.NewRegistry(cfg.Providers)
	log.WithField("providers", registry.IDs()).Info("model providers registered")

	analysisService := usecase.NewAnalysisService(registry, log)
	catalogService := usecase.NewCatalogService(cacheRepo, cfg.Cache.TTL, log)

	handler := httpDelivery.NewHandler(analysisService, catalogService, cfg.Shopify, log)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.WithField("addr", addr).Info("server listening")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildCache selects the cache backend from configuration, falling back to
// memory when Redis is unreachable at startup
func buildCache(cfg *config.Config, log *logrus.Logger) domain.CacheRepository {
	if cfg.Cache.Type != "redis" {
		return cache.NewMemoryCache()
	}

	redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
	if err != nil {
		log.WithError(err).Warn("invalid Redis configuration, using memory cache")
		return cache.NewMemoryCache()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.WithError(err).Warn("Redis unreachable, using memory cache")
		return cache.NewMemoryCache()
	}

	log.Info("Redis cache connected")
	return redisCache
}
