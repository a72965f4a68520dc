package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lamnguyen-dev/tilecat-backend/api/middleware"
	"github.com/lamnguyen-dev/tilecat-backend/api/routes"
	"github.com/lamnguyen-dev/tilecat-backend/internal/catalog"
	"github.com/lamnguyen-dev/tilecat-backend/internal/products"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/config"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/db"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/logger"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/metrics"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/migrate"
	"github.com/lamnguyen-dev/tilecat-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	// Redis being down degrades gracefully: reference reads skip the cache and
	// order-number allocation reports a dependency error so the dashboard
	// falls back to manual entry.
	var catalogCache catalog.Cache
	var sequencer products.Sequencer
	var redisPinger redis.Pinger
	var rateLimiter middleware.RateLimitStore
	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "redis unavailable, continuing without cache and sequence", err)
	} else {
		catalogCache = redisClient
		sequencer = redisClient
		redisPinger = redisClient
		rateLimiter = redisClient
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	catalogService := catalog.NewService(
		catalog.NewRepository(dbClient.DB()),
		catalogCache,
		cfg.Catalog.CacheTTL,
		logg,
	)
	productService := products.NewService(
		products.NewRepository(dbClient.DB()),
		catalogService,
		sequencer,
		cfg.Sequence,
		cfg.Uniqueness,
		logg,
	)

	router := routes.NewRouter(routes.Deps{
		Config:         cfg,
		Logger:         logg,
		DBPinger:       dbClient,
		RedisPinger:    redisPinger,
		RateLimiter:    rateLimiter,
		HTTPMetrics:    httpMetrics,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Catalog:        catalogService,
		Products:       productService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
