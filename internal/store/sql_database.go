package store

import (
	"database/sql"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/MKhiriev/go-account-sync/migrations"
)

// ErrorClassificator decides whether a failed database call is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a database handle shared by the repositories of one backend.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the account database schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateLocal applies the client session cache schema.
func (db *DB) MigrateLocal() error {
	return migrations.MigrateLocal(db.DB)
}

// retryable reports whether err was classified as transient. Handles without
// a classifier (SQLite) report false.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
