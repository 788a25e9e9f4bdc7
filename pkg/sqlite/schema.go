package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CurrentSchemaVersion is the schema version this binary writes and reads.
const CurrentSchemaVersion = 1

// ErrSchemaTooNew is returned when the database was migrated by a newer binary.
var ErrSchemaTooNew = errors.New("database schema is newer than supported")

// Migrate brings db up to CurrentSchemaVersion. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	current, err := SchemaVersion(ctx, db)
	if err != nil {
		return err
	}

	if current > CurrentSchemaVersion {
		return fmt.Errorf("%w: version %d, max %d", ErrSchemaTooNew, current, CurrentSchemaVersion)
	}

	if current < CurrentSchemaVersion {
		if err := applyMigrations(ctx, db, current); err != nil {
			return fmt.Errorf("applying migrations: %w", err)
		}
	}

	return nil
}

// SchemaVersion returns the recorded schema version, 0 for an empty database.
func SchemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var tableName string
	err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableName)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("checking schema_version table: %w", err)
	}

	var version int
	err = db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return version, nil
}

func applyMigrations(ctx context.Context, db *sql.DB, fromVersion int) error {
	if fromVersion == 0 {
		if err := migrateV0ToV1(ctx, db); err != nil {
			return fmt.Errorf("migration v0→v1: %w", err)
		}
	}
	return nil
}

// Loosely typed columns (due_date, estimated_hours, timestamps) are TEXT on
// purpose: rows written by older clients are normalized when read.
func migrateV0ToV1(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL DEFAULT '',
			email      TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id              TEXT PRIMARY KEY,
			user_id         TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			title           TEXT NOT NULL,
			course          TEXT,
			priority        TEXT NOT NULL DEFAULT 'medium',
			status          TEXT NOT NULL DEFAULT 'pending',
			due_date        TEXT,
			estimated_hours TEXT,
			created_at      TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
			updated_at      TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks (user_id)`,
		`CREATE TABLE IF NOT EXISTS task_status_history (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id     TEXT NOT NULL REFERENCES tasks (id) ON DELETE CASCADE,
			from_status TEXT,
			to_status   TEXT NOT NULL,
			changed_at  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_task_changed ON task_status_history (task_id, changed_at)`,
		`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`,
		`DELETE FROM schema_version`,
		`INSERT INTO schema_version (version) VALUES (1)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return tx.Commit()
}
