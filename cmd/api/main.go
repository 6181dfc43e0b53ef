package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shawndjkidd/aletrail-platform/api/routes"
	"github.com/shawndjkidd/aletrail-platform/internal/analytics"
	"github.com/shawndjkidd/aletrail-platform/internal/breweries"
	"github.com/shawndjkidd/aletrail-platform/internal/ratings"
	"github.com/shawndjkidd/aletrail-platform/internal/recommendations"
	"github.com/shawndjkidd/aletrail-platform/internal/stamps"
	"github.com/shawndjkidd/aletrail-platform/internal/trails"
	"github.com/shawndjkidd/aletrail-platform/internal/users"
	"github.com/shawndjkidd/aletrail-platform/internal/validation"
	"github.com/shawndjkidd/aletrail-platform/pkg/config"
	"github.com/shawndjkidd/aletrail-platform/pkg/db"
	"github.com/shawndjkidd/aletrail-platform/pkg/logger"
	"github.com/shawndjkidd/aletrail-platform/pkg/metrics"
	"github.com/shawndjkidd/aletrail-platform/pkg/migrate"
	"github.com/shawndjkidd/aletrail-platform/pkg/redis"
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

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	apiMetrics := metrics.NewAPIMetrics(registry)

	gormDB := dbClient.DB()
	trailRepo := trails.NewRepository(gormDB)
	breweryRepo := breweries.NewRepository(gormDB)
	userRepo := users.NewRepository(gormDB)
	stampRepo := stamps.NewRepository(gormDB)
	ratingRepo := ratings.NewRepository(gormDB)
	eventRepo := analytics.NewRepository(gormDB)

	trailService, err := trails.NewService(trailRepo)
	exitOnError(logg, "trail service", err)

	breweryService, err := breweries.NewService(breweries.ServiceParams{
		BreweryRepo: breweryRepo,
		TrailRepo:   trailRepo,
	})
	exitOnError(logg, "brewery service", err)

	validationService, err := validation.NewService(validation.ServiceParams{
		BreweryRepo: breweryRepo,
		StampRepo:   stampRepo,
		EventRepo:   eventRepo,
		Metrics:     apiMetrics,
		Logger:      logg,
	})
	exitOnError(logg, "validation service", err)

	stampService, err := stamps.NewService(stampRepo, trailRepo)
	exitOnError(logg, "stamp service", err)

	ratingService, err := ratings.NewService(ratings.ServiceParams{
		RatingRepo:  ratingRepo,
		BreweryRepo: breweryRepo,
		EventRepo:   eventRepo,
		Metrics:     apiMetrics,
		Logger:      logg,
	})
	exitOnError(logg, "rating service", err)

	recommendationService, err := recommendations.NewService(recommendations.ServiceParams{
		TrailRepo:   trailRepo,
		UserRepo:    userRepo,
		BreweryRepo: breweryRepo,
		StampRepo:   stampRepo,
	})
	exitOnError(logg, "recommendation service", err)

	analyticsService, err := analytics.NewService(analytics.ServiceParams{
		EventRepo: eventRepo,
		TrailRepo: trailRepo,
		StampRepo: stampRepo,
	})
	exitOnError(logg, "analytics service", err)

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
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			trailService,
			breweryService,
			validationService,
			stampService,
			ratingService,
			recommendationService,
			analyticsService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func exitOnError(logg *logger.Logger, what string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), "failed to create "+what, err)
	os.Exit(1)
}
