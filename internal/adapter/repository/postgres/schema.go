package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openlot/leadhub/pkg/util"
)

// Schema creation is idempotent: every statement is CREATE ... IF NOT EXISTS
// so Migrate can run on every start without touching existing data.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS dealerships (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		dealership_id UUID REFERENCES dealerships(id),
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'sales_rep',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id UUID PRIMARY KEY,
		dealership_id UUID NOT NULL REFERENCES dealerships(id),
		assigned_to UUID REFERENCES users(id),
		customer_name TEXT NOT NULL DEFAULT '',
		customer_email TEXT NOT NULL DEFAULT '',
		customer_phone TEXT NOT NULL DEFAULT '',
		vehicle_interest TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT 'manual',
		notes TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL DEFAULT 'medium',
		status TEXT NOT NULL DEFAULT 'new',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_dealership ON leads (dealership_id)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads (status)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id UUID PRIMARY KEY,
		lead_id UUID NOT NULL REFERENCES leads(id),
		user_id UUID REFERENCES users(id),
		type TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_lead ON activities (lead_id)`,
	`CREATE TABLE IF NOT EXISTS email_logs (
		id UUID PRIMARY KEY,
		sender TEXT NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL DEFAULT '',
		processed BOOLEAN NOT NULL DEFAULT FALSE,
		lead_id UUID REFERENCES leads(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// Fixed IDs keep reseeding idempotent: conflict on the primary key means the
// row already exists and the insert is skipped.
var (
	seedDealershipID = uuid.MustParse("7d09bfc4-14a6-4b0e-9a4e-1f25c9e6a001")
	seedLeadID1      = uuid.MustParse("7d09bfc4-14a6-4b0e-9a4e-1f25c9e6a101")
	seedLeadID2      = uuid.MustParse("7d09bfc4-14a6-4b0e-9a4e-1f25c9e6a102")
	seedAdminID      = uuid.MustParse("7d09bfc4-14a6-4b0e-9a4e-1f25c9e6a201")
	seedRepID        = uuid.MustParse("7d09bfc4-14a6-4b0e-9a4e-1f25c9e6a202")
)

const (
	SeedDealershipName = "Sunrise Auto Group"
	SeedAdminEmail     = "admin@sunriseauto.test"
	SeedAdminPassword  = "admin123"
	SeedRepEmail       = "rep@sunriseauto.test"
	SeedRepPassword    = "sales123"
)

// Migrate creates all tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Seed inserts the demo dealership, demo users, and sample leads.
//
// Dealership and lead rows must never duplicate, so they insert with
// ON CONFLICT DO NOTHING. The two demo users instead upsert on email so
// that reseeding always resets the demo credentials to known values.
func Seed(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	now := time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO dealerships (id, name, address, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`, seedDealershipID, SeedDealershipName, "4200 Coast Hwy, San Diego, CA",
		"619-555-0142", "sales@sunriseauto.test", now)
	if err != nil {
		return fmt.Errorf("seed dealership: %w", err)
	}

	users := []struct {
		id       uuid.UUID
		email    string
		password string
		name     string
		role     string
	}{
		{seedAdminID, SeedAdminEmail, SeedAdminPassword, "Demo Admin", "admin"},
		{seedRepID, SeedRepEmail, SeedRepPassword, "Demo Rep", "sales_rep"},
	}

	for _, u := range users {
		hash, err := util.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}

		_, err = db.ExecContext(ctx, `
			INSERT INTO users (id, dealership_id, email, password_hash, name, role, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (email) DO UPDATE
			SET password_hash = EXCLUDED.password_hash, updated_at = EXCLUDED.updated_at
		`, u.id, seedDealershipID, u.email, hash, u.name, u.role, now, now)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	leads := []struct {
		id       uuid.UUID
		name     string
		email    string
		phone    string
		vehicle  string
		source   string
		priority string
	}{
		{seedLeadID1, "Maria Santos", "maria.santos@example.com", "619-555-0188", "Toyota", "website", "high"},
		{seedLeadID2, "James Okafor", "j.okafor@example.com", "858-555-0137", "Honda", "phone", "medium"},
	}

	for _, l := range leads {
		_, err := db.ExecContext(ctx, `
			INSERT INTO leads (id, dealership_id, customer_name, customer_email, customer_phone,
				vehicle_interest, source, notes, priority, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, '', $8, 'new', $9, $9)
			ON CONFLICT (id) DO NOTHING
		`, l.id, seedDealershipID, l.name, l.email, l.phone, l.vehicle, l.source, l.priority, now)
		if err != nil {
			return fmt.Errorf("seed lead %s: %w", l.name, err)
		}
	}

	logger.Info("database seeded", "dealership", SeedDealershipName, "users", len(users), "leads", len(leads))
	return nil
}
