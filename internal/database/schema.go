package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// complaintsSchema is portable between sqlite3 and postgres.
const complaintsSchema = `
CREATE TABLE IF NOT EXISTS complaints (
	id          TEXT PRIMARY KEY,
	description TEXT NOT NULL,
	gps         TEXT NOT NULL DEFAULT '',
	area        TEXT NOT NULL DEFAULT '',
	voice_path  TEXT NOT NULL DEFAULT '',
	image_path  TEXT NOT NULL DEFAULT '',
	paper_path  TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL DEFAULT '',
	priority    TEXT NOT NULL DEFAULT 'MEDIUM',
	status      TEXT NOT NULL DEFAULT 'SUBMITTED',
	department  TEXT NOT NULL DEFAULT '',
	sla         TEXT NOT NULL DEFAULT '',
	eta         TEXT NOT NULL DEFAULT '',
	insight     TEXT NOT NULL DEFAULT '',
	zone        TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMP NOT NULL,
	updated_at  TIMESTAMP NOT NULL,
	analyzed_at TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_complaints_status ON complaints (status);
CREATE INDEX IF NOT EXISTS idx_complaints_created ON complaints (created_at);
`

// Migrate creates the complaint tables when they do not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, complaintsSchema); err != nil {
		return fmt.Errorf("apply complaints schema: %w", err)
	}
	return nil
}
