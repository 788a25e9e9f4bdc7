package sqlite

import (
	"database/sql"
	"fmt"

	"studypal/internal/stats/repository"
	"studypal/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the stats domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("stats/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("stats/repository/sqlite.%s", method)
}
