package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-sync/internal/config"
	"github.com/MKhiriev/go-account-sync/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	AccountRepository AccountRepository

	db *DB
}

// NewStorages connects the account store selected by cfg.DB.DSN. The
// "memory" DSN selects the in-process store; anything else is treated as a
// PostgreSQL DSN, which is pinged and migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == config.MemoryDSN {
		return &Storages{AccountRepository: NewMemoryAccountRepository(logger)}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the database handle, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
