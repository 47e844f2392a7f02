package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
)

// DatabaseFileName is the SQLite file created inside the data directory.
const DatabaseFileName = "cliper.sqlite"

const defaultBusyTimeout = 5 * time.Second

// NewConnectSQLite creates the data directory (0700) when missing and opens
// <dir>/cliper.sqlite in WAL mode with a busy timeout. The pool is limited
// to one connection; statements are additionally serialized by [DB].
func NewConnectSQLite(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("%w: data directory is not set", ErrStorageInit)
	}

	// db will be in file
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("dir", cfg.DataDir).Msg("error creating data directory")
		return nil, fmt.Errorf("%w: create data directory: %w", ErrStorageInit, err)
	}

	path, err := filepath.Abs(filepath.Join(cfg.DataDir, DatabaseFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: resolve database path: %w", ErrStorageInit, err)
	}
	conn, err := sql.Open("sqlite3", sqliteDSN(path, cfg.BusyTimeout))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: open database: %w", ErrStorageInit, err)
	}

	// setup connections
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: ping database: %w", ErrStorageInit, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return newDB(conn, log), nil
}

// sqliteDSN builds a mattn/go-sqlite3 URI DSN enabling WAL journaling. path
// must be absolute; it is percent-escaped so '#', '?' and '%' stay part of
// the file name.
func sqliteDSN(path string, busyTimeout time.Duration) string {
	if busyTimeout <= 0 {
		busyTimeout = defaultBusyTimeout
	}

	params := url.Values{}
	params.Set("_journal_mode", "WAL")
	params.Set("_busy_timeout", strconv.FormatInt(busyTimeout.Milliseconds(), 10))
	params.Set("_txlock", "immediate")

	slashed := filepath.ToSlash(path)
	if !strings.HasPrefix(slashed, "/") {
		// windows volume: file:///C:/...
		slashed = "/" + slashed
	}

	u := url.URL{Scheme: "file", Path: slashed, RawQuery: params.Encode()}
	return u.String()
}
