// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.BundleID) == "" {
		return fmt.Errorf("%w: bundle id is empty", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DataDir == "" {
		return fmt.Errorf("%w: data directory is not set and no user config dir is available", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.BusyTimeout < 0 {
		return fmt.Errorf("%w: busy timeout must not be negative", ErrInvalidStorageConfigs)
	}

	switch cfg.Keystore.Backend {
	case KeystoreKeyring:
	case KeystoreFile:
		if cfg.Keystore.Passphrase == "" {
			return fmt.Errorf("%w: file keystore requires %sKEYSTORE_PASSPHRASE", ErrInvalidKeystoreConfigs, EnvPrefix)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidKeystoreConfigs, cfg.Keystore.Backend)
	}

	if cfg.Watcher.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval must be positive", ErrInvalidWatcherConfigs)
	}
	if cfg.Watcher.ClipboardTimeout <= 0 {
		return fmt.Errorf("%w: clipboard timeout must be positive", ErrInvalidWatcherConfigs)
	}
	switch cfg.Watcher.Backend {
	case "auto", "native", "text", "headless":
	default:
		return fmt.Errorf("%w: unknown clipboard backend %q", ErrInvalidWatcherConfigs, cfg.Watcher.Backend)
	}

	if cfg.Workers.AutoLockAfter < 0 {
		return fmt.Errorf("%w: auto-lock interval must not be negative", ErrInvalidWorkerConfigs)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidLogConfigs, cfg.Log.Format)
	}

	return nil
}
