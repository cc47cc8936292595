package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpAdapter "github.com/ledgerguard/ledgerguard/internal/adapter/http"
	"github.com/ledgerguard/ledgerguard/internal/adapter/http/handler"
	redisRepo "github.com/ledgerguard/ledgerguard/internal/adapter/repository/redis"
	"github.com/ledgerguard/ledgerguard/internal/adapter/upstream"
	"github.com/ledgerguard/ledgerguard/internal/infrastructure/config"
	"github.com/ledgerguard/ledgerguard/internal/infrastructure/logger"
	"github.com/ledgerguard/ledgerguard/internal/infrastructure/metrics"
	"github.com/ledgerguard/ledgerguard/internal/infrastructure/redis"
	"github.com/ledgerguard/ledgerguard/internal/usecase"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	loc, err := time.LoadLocation(cfg.ReportingTimezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.ReportingTimezone).Msg("invalid reporting timezone")
	}

	m := metrics.New()

	// Upstream accounting API
	upstreamClient := upstream.NewClient(upstream.Config{
		BaseURL:              cfg.UpstreamBaseURL,
		Timeout:              cfg.UpstreamTimeout,
		RetryInitialInterval: cfg.UpstreamRetryInterval,
		RetryMaxInterval:     cfg.UpstreamRetryMax,
		RetryMaxElapsedTime:  cfg.UpstreamRetryElapsed,
	}, loc, log)

	pingers := map[string]handler.Pinger{
		"upstream": upstreamClient,
	}

	// Optional Redis snapshot cache
	var snapshots usecase.SnapshotSource = upstreamClient
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()

		cache := redisRepo.NewSnapshotCache(upstreamClient, redisClient, cfg.SnapshotCacheTTL, m, log)
		snapshots = cache
		pingers["redis"] = cache
		log.Info().Dur("ttl", cfg.SnapshotCacheTTL).Msg("snapshot cache enabled")
	}

	// Use cases
	validationUC := usecase.NewValidationUseCase(snapshots, usecase.SystemClock{}, loc, m, log)
	reportUC := usecase.NewReportUseCase(snapshots, log)

	// Router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler: handler.NewAccountHandler(validationUC),
		EntryHandler:   handler.NewEntryHandler(validationUC, loc),
		ReportHandler:  handler.NewReportHandler(reportUC, loc),
		HealthHandler:  handler.NewHealthHandler(pingers),
		Logger:         log,
		RateLimit:      cfg.RateLimit,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("timezone", cfg.ReportingTimezone).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
