package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/openlot/leadhub/internal/adapter/api"
	"github.com/openlot/leadhub/internal/adapter/api/middleware"
	"github.com/openlot/leadhub/internal/adapter/metrics"
	"github.com/openlot/leadhub/internal/adapter/repository/postgres"
	"github.com/openlot/leadhub/internal/pkg/config"
	"github.com/openlot/leadhub/internal/pkg/logger"
	"github.com/openlot/leadhub/internal/usecase"

	_ "github.com/lib/pq" // postgres driver
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logger.New(cfg.LogLevel)
	slog.SetDefault(logger)

	m := metrics.NewAPIMetrics()

	// --- Admin and Metrics Server ---
	adminMux := http.NewServeMux()
	adminMux.Handle("/metrics", promhttp.Handler())

	adminServer := &http.Server{
		Addr:    cfg.AdminAddr,
		Handler: adminMux,
	}

	go func() {
		logger.Info("starting admin & metrics server", "addr", adminServer.Addr)
		if err := adminServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("admin & metrics server failed", "error", err)
		}
	}()

	// --- Graceful Shutdown Context ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database and Redis Connections ---
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to ping postgres", "error", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("could not connect to redis, rate limiting falls back to in-process", "error", err)
		}
	}

	// --- Schema / Seed ---
	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}
	if cfg.SeedOnStart {
		if err := postgres.Seed(ctx, db, logger); err != nil {
			logger.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	dealershipRepo := postgres.NewDealershipRepository(db)
	leadRepo := postgres.NewLeadRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	emailLogRepo := postgres.NewEmailLogRepository(db)

	// --- Use Cases ---
	authUC := usecase.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	leadUC := usecase.NewLeadService(leadRepo, userRepo, activityRepo, logger)
	emailUC := usecase.NewEmailService(emailLogRepo, leadRepo, activityRepo, dealershipRepo, logger)
	analyticsUC := usecase.NewAnalyticsService(leadRepo)

	// --- HTTP Server ---
	rateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimitRPS, cfg.RateLimitBurst, logger, m)
	router := api.NewRouter(cfg, logger, m, rateLimiter, authUC, leadUC, emailUC, analyticsUC)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		logger.Info("starting lead API server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("lead API server failed", "error", err)
			stop() // Trigger shutdown on server error
		}
	}()

	// --- Wait for shutdown signal ---
	<-ctx.Done()
	logger.Info("shutting down servers...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := adminServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("admin server shutdown failed", "error", err)
	}
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("lead API server shutdown failed", "error", err)
	}

	logger.Info("servers shut down gracefully")
}
