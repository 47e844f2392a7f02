package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
)

// Storages groups the repositories backed by the local SQLite database.
type Storages struct {
	// Items is the encrypted clipboard history.
	Items ItemRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. opens <cfg.DataDir>/cliper.sqlite, creating the directory if needed;
//  2. runs pending schema migrations via [DB.Migrate];
//  3. wires the repositories to the connection.
//
// Every failure wraps [ErrStorageInit].
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Debug().Str("dir", cfg.DataDir).Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		log.Err(err).Str("func", "NewStorages").Msg("migration failed")
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Items: NewItemRepository(db, log),
		db:    db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
