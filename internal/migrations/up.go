// All migrations in one file; order is fixed by the list in migrations.go.
package migrations

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cargomatters/backend/internal/util"
)

// 1: schema_version + transporters. The fleet and admin notes are embedded
// JSONB arrays on the transporter row; there are no vehicle or note tables.
func UpTransporters(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INT PRIMARY KEY,
			name    TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS transporters (
			id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			transporter_id   TEXT NOT NULL UNIQUE,
			company_name     TEXT NOT NULL,
			contact_person   TEXT NOT NULL,
			email            TEXT NOT NULL UNIQUE,
			password_hash    TEXT NOT NULL,
			primary_phone    TEXT NOT NULL,
			alt_phone        TEXT NOT NULL DEFAULT '',
			gst_number       TEXT NOT NULL DEFAULT '',
			pan_number       TEXT NOT NULL DEFAULT '',
			address          TEXT NOT NULL DEFAULT '',
			operating_states TEXT[] NOT NULL DEFAULT '{}',
			website          TEXT NOT NULL DEFAULT '',
			documents        JSONB NOT NULL DEFAULT '{}',
			vehicles         JSONB NOT NULL DEFAULT '[]',
			vehicles_count   INT NOT NULL DEFAULT 0,
			notes            JSONB NOT NULL DEFAULT '[]',
			status           TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Approved', 'Rejected')),
			rejection_reason TEXT NOT NULL DEFAULT '',
			rejected_at      TIMESTAMPTZ,
			reminded_at      TIMESTAMPTZ,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return err
	}
	for _, q := range []string{
		`CREATE INDEX IF NOT EXISTS idx_transporters_created_at ON transporters (created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_transporters_status ON transporters (status)`,
		`CREATE INDEX IF NOT EXISTS idx_transporters_gst_number ON transporters (gst_number)`,
		`CREATE INDEX IF NOT EXISTS idx_transporters_primary_phone ON transporters (primary_phone)`,
		`CREATE INDEX IF NOT EXISTS idx_transporters_vehicles ON transporters USING GIN (vehicles jsonb_path_ops)`,
	} {
		if _, err := pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO schema_version (version, name) VALUES (1, 'create_transporters_table')
		ON CONFLICT (version) DO NOTHING
	`)
	return err
}

// 2: admins
func UpAdmins(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS admins (
			id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			name          TEXT NOT NULL DEFAULT 'Admin',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO schema_version (version, name) VALUES (2, 'create_admins_table')
		ON CONFLICT (version) DO NOTHING
	`)
	return err
}

// 3: seed a default admin when the table is empty, so a fresh deployment
// has a working back office login. Credentials come from env.
func UpSeedDefaultAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@cargomatters.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin@123"
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM admins`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		hash, err := util.HashPassword(password)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, `
			INSERT INTO admins (email, password_hash, name) VALUES ($1, $2, 'CargoMatters Admin')
			ON CONFLICT (email) DO NOTHING
		`, email, hash); err != nil {
			return err
		}
	}
	_, err := pool.Exec(ctx, `
		INSERT INTO schema_version (version, name) VALUES (3, 'seed_default_admin')
		ON CONFLICT (version) DO NOTHING
	`)
	return err
}
