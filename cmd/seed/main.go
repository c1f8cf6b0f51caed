// Command seed creates the schema and inserts the demo rows. It is
// idempotent: tables are created if absent, dealership and lead seed rows
// are skipped on conflict, and the demo users are reset to their known
// credentials on every run.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/openlot/leadhub/internal/adapter/repository/postgres"
	"github.com/openlot/leadhub/internal/pkg/config"
	"github.com/openlot/leadhub/internal/pkg/logger"

	_ "github.com/lib/pq" // postgres driver
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

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

	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
	logger.Info("schema up to date")

	if err := postgres.Seed(ctx, db, logger); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seed complete",
		"admin_email", postgres.SeedAdminEmail,
		"rep_email", postgres.SeedRepEmail,
	)
}
