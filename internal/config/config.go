// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CLIPER_"

// StructuredConfig is the top-level configuration container for cliper. It
// aggregates all sub-configurations and is populated by merging defaults,
// an optional JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity settings.
	App App `envPrefix:"APP_"`

	// Storage holds the location and tuning of the SQLite database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Keystore selects where the master key is kept at rest.
	Keystore Keystore `envPrefix:"KEYSTORE_"`

	// Watcher holds clipboard polling settings.
	Watcher Watcher `envPrefix:"WATCHER_"`

	// Workers holds configuration for background jobs other than the
	// watcher loop.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log controls log level and encoding.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CLIPER_CONFIG environment variable or the
	// -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application identity settings.
type App struct {
	// BundleID namespaces the OS keyring entry: the master key is stored
	// under the service "<BundleID>.masterkey".
	// Env: CLIPER_APP_BUNDLE_ID
	BundleID string `env:"BUNDLE_ID"`
}

// Storage holds the SQLite settings.
type Storage struct {
	// DataDir is the directory holding cliper.sqlite (and the sealed key
	// file when the file keystore is used). Created with mode 0700.
	// Env: CLIPER_STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// BusyTimeout is how long SQLite waits on a locked database before
	// returning SQLITE_BUSY.
	// Env: CLIPER_STORAGE_BUSY_TIMEOUT
	BusyTimeout time.Duration `env:"BUSY_TIMEOUT"`
}

// Keystore selects the master key backend.
type Keystore struct {
	// Backend is "keyring" (OS credential store) or "file" (passphrase
	// sealed file in DataDir).
	// Env: CLIPER_KEYSTORE_BACKEND
	Backend string `env:"BACKEND"`

	// Passphrase unlocks the sealed file. Required for the file backend.
	// Never read from flags so it does not end up in shell history.
	// Env: CLIPER_KEYSTORE_PASSPHRASE
	Passphrase string `env:"PASSPHRASE" json:"-"`
}

// Watcher holds clipboard capture settings.
type Watcher struct {
	// PollInterval is the delay between two change-counter samples.
	// Env: CLIPER_WATCHER_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// ClipboardTimeout bounds every single OS clipboard call.
	// Env: CLIPER_WATCHER_CLIPBOARD_TIMEOUT
	ClipboardTimeout time.Duration `env:"CLIPBOARD_TIMEOUT"`

	// Backend forces a clipboard backend: "auto", "native", "text" or
	// "headless".
	// Env: CLIPER_WATCHER_BACKEND
	Backend string `env:"BACKEND"`

	// StartLocked keeps the daemon locked at startup. Text and images are
	// not captured until the key is unlocked.
	// Env: CLIPER_WATCHER_START_LOCKED
	StartLocked bool `env:"START_LOCKED"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// AutoLockAfter locks the key after this much time without a user
	// command. Zero disables auto-lock.
	// Env: CLIPER_WORKERS_AUTO_LOCK_AFTER
	AutoLockAfter time.Duration `env:"AUTO_LOCK_AFTER"`
}

// Log controls the logger.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: CLIPER_LOG_LEVEL
	Level string `env:"LEVEL"`

	// Format is "auto", "text" or "json".
	// Env: CLIPER_LOG_FORMAT
	Format string `env:"FORMAT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Defaults
//  2. JSON file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Flags registered with [RegisterFlags] on fs (nil skips flags)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
