package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	docs "bondprojector/docs"
	appcatalog "bondprojector/internal/application/service/catalog"
	appprojection "bondprojector/internal/application/service/projection"
	"bondprojector/internal/config"
	"bondprojector/internal/domain/interfaces"
	"bondprojector/internal/infrastructure/cache"
	infracatalog "bondprojector/internal/infrastructure/catalog"
	infrahttp "bondprojector/internal/interfaces/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatalf("failed to parse log level: %v", err)
	}
	logger.SetLevel(level)

	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()

	catalogRepo, err := infracatalog.NewRepository(cfg.Catalog.File)
	if err != nil {
		logger.Fatalf("failed to load bond catalog: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"bonds": catalogRepo.Len(),
		"file":  cfg.Catalog.File,
	}).Info("bond catalog loaded")

	var projectionCache interfaces.ProjectionCache
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		projectionCache = cache.NewRedisCache(redisClient)
		logger.WithField("addr", cfg.Redis.Addr).Info("using redis projection cache")
	} else {
		projectionCache = cache.NewMemoryCache()
		logger.Info("using in-memory projection cache")
	}

	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	catalogService := appcatalog.NewService(catalogRepo)
	projectionService := appprojection.NewService(catalogRepo, projectionCache, cacheTTL, logger)

	var rateLimiter *infrahttp.RateLimiter
	if cfg.RateLimit.Capacity > 0 {
		rateLimiter = infrahttp.NewRateLimiter(cfg.RateLimit.Capacity, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)
		defer rateLimiter.Stop()
	}

	handler, err := infrahttp.NewHandler(catalogService, projectionService, infrahttp.Options{
		Cache:      projectionCache,
		CacheTTL:   cacheTTL,
		Limiter:    rateLimiter,
		Logger:     logger,
		StartCash:  int64(cfg.Projection.StartCash),
		MaxYears:   cfg.Projection.MaxYears,
		YearsLimit: cfg.Projection.YearsLimit,
		Currency:   cfg.Projection.Currency,
	})
	if err != nil {
		logger.Fatalf("failed to create HTTP handler: %v", err)
	}

	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("HTTP server listening on %s", cfg.HTTP.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
