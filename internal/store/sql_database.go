package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/migrations"
)

const (
	defaultMaxRetries = 3
	defaultRetryBase  = 25 * time.Millisecond
)

// DB wraps the single SQLite connection. Every repository statement runs
// through [DB.exclusive], so at most one statement (or dedup+insert pair)
// is in flight at a time.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	mu         sync.Mutex
	maxRetries uint64
	retryBase  time.Duration
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
		maxRetries:         defaultMaxRetries,
		retryBase:          defaultRetryBase,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := migrations.Migrate(ctx, db.DB, db.logger); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageInit, err)
	}
	return nil
}

// exclusive runs fn while holding the connection mutex. Errors classified
// as [Retryable] are retried with exponential backoff a bounded number of
// times; any other error is returned as is.
func (db *DB) exclusive(ctx context.Context, fn func(ctx context.Context) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	backoff := retry.WithMaxRetries(db.maxRetries, retry.NewExponential(db.retryBase))
	attempt := 0

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Int("attempt", attempt).Msg("database busy, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// isNoRows reports whether err signals an empty single-row result.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
