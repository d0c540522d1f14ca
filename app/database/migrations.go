package database

import (
	"database/sql"
	"fmt"
)

// RunMigrations creates the schema when missing and applies incremental
// updates. Every statement is idempotent so the runner is safe on every boot.
func RunMigrations(db *sql.DB) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			full_name TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS organizations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			created_by UUID NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS organization_members (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			user_id UUID NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
			role VARCHAR(20) NOT NULL DEFAULT 'admin',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS app_config (
			organization_id UUID PRIMARY KEY REFERENCES organizations(id) ON DELETE CASCADE,
			general_tariff_usd NUMERIC(10,2) NOT NULL DEFAULT 0,
			last_weekly_charge_applied TIMESTAMPTZ,
			transport_name TEXT,
			theme_preference VARCHAR(20) NOT NULL DEFAULT 'system',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_by UUID REFERENCES users(id)
		)`,

		`CREATE TABLE IF NOT EXISTS representatives (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			alias TEXT NOT NULL,
			email TEXT,
			phone VARCHAR(20),
			address TEXT,
			code VARCHAR(9) NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS passengers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			type VARCHAR(10) NOT NULL,
			representative_id UUID REFERENCES representatives(id) ON DELETE SET NULL,
			weekly_tariff_usd NUMERIC(10,2),
			custom_tariff_usd NUMERIC(10,2),
			is_active BOOLEAN NOT NULL DEFAULT true,
			code VARCHAR(9) UNIQUE,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			organization_id UUID NOT NULL REFERENCES organizations(id) ON DELETE CASCADE,
			representative_id UUID NOT NULL REFERENCES representatives(id) ON DELETE CASCADE,
			date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			kind VARCHAR(10) NOT NULL,
			amount_usd NUMERIC(10,2) NOT NULL,
			concept TEXT NOT NULL,
			notes TEXT,
			created_by UUID NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS cron_logs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			org_id UUID NOT NULL,
			status VARCHAR(10) NOT NULL,
			result TEXT NOT NULL,
			result_json JSONB,
			error_detail TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_passengers_org ON passengers(organization_id)`,
		`CREATE INDEX IF NOT EXISTS idx_passengers_rep ON passengers(representative_id)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_org_date ON transactions(organization_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_transactions_rep ON transactions(representative_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cron_logs_org ON cron_logs(org_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
