package migrations

import (
	"context"
	"database/sql"
	"errors"

	"github.com/agrovision/gw-crop-manager/internal/logger"
	"github.com/jmoiron/sqlx"
)

// Versioned migration steps, applied in order exactly once and tracked in
// schema_migrations. Step 2 is the historical additive disease/cure column
// change, kept as an explicit step instead of a startup schema probe.
var steps = []struct {
	version    int
	statements []string
}{
	{
		version: 1,
		statements: []string{
			`CREATE TABLE IF NOT EXISTS users (
				user_id UUID PRIMARY KEY,
				username VARCHAR(50) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMP NOT NULL DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS crops (
				crop_id BIGSERIAL PRIMARY KEY,
				username VARCHAR(50) NOT NULL,
				crop_name VARCHAR(100) NOT NULL,
				plant_date DATE NOT NULL,
				expected_yield DOUBLE PRECISION NOT NULL CHECK (expected_yield >= 0),
				location VARCHAR(255) NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			)`,
		},
	},
	{
		version: 2,
		statements: []string{
			`ALTER TABLE crops ADD COLUMN IF NOT EXISTS disease VARCHAR(50) NOT NULL DEFAULT ''`,
			`ALTER TABLE crops ADD COLUMN IF NOT EXISTS suggested_cure VARCHAR(255) NOT NULL DEFAULT ''`,
		},
	},
}

// Apply runs all pending migration steps, each in its own transaction.
func Apply(ctx context.Context, db *sqlx.DB) error {
	const createTable = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		return err
	}

	current, err := currentVersion(ctx, db)
	if err != nil {
		return err
	}

	for _, step := range steps {
		if step.version <= current {
			continue
		}

		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			return err
		}

		for _, stmt := range step.statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				tx.Rollback()
				logger.Log.Errorw("migration step failed", "version", step.version, "error", err)
				return err
			}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schema_migrations (version) VALUES ($1)`, step.version); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}

		logger.Log.Infow("migration step applied", "version", step.version)
	}

	return nil
}

// currentVersion returns the highest applied migration version, 0 when none.
func currentVersion(ctx context.Context, db *sqlx.DB) (int, error) {
	var version int
	err := db.GetContext(ctx, &version, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return version, nil
}
