// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CLIPER_CONFIG": "/path/to/config.json",

		"CLIPER_APP_BUNDLE_ID":             "com.example.clips",
		"CLIPER_STORAGE_DATA_DIR":          "/var/lib/cliper",
		"CLIPER_STORAGE_BUSY_TIMEOUT":      "3s",
		"CLIPER_KEYSTORE_BACKEND":          "file",
		"CLIPER_KEYSTORE_PASSPHRASE":       "hunter2",
		"CLIPER_WATCHER_POLL_INTERVAL":     "500ms",
		"CLIPER_WATCHER_CLIPBOARD_TIMEOUT": "1s",
		"CLIPER_WATCHER_BACKEND":           "text",
		"CLIPER_WATCHER_START_LOCKED":      "true",
		"CLIPER_WORKERS_AUTO_LOCK_AFTER":   "5m",
		"CLIPER_LOG_LEVEL":                 "debug",
		"CLIPER_LOG_FORMAT":                "json",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "com.example.clips", cfg.App.BundleID)
	assert.Equal(t, "/var/lib/cliper", cfg.Storage.DataDir)
	assert.Equal(t, 3*time.Second, cfg.Storage.BusyTimeout)
	assert.Equal(t, "file", cfg.Keystore.Backend)
	assert.Equal(t, "hunter2", cfg.Keystore.Passphrase)
	assert.Equal(t, 500*time.Millisecond, cfg.Watcher.PollInterval)
	assert.Equal(t, time.Second, cfg.Watcher.ClipboardTimeout)
	assert.Equal(t, "text", cfg.Watcher.Backend)
	assert.True(t, cfg.Watcher.StartLocked)
	assert.Equal(t, 5*time.Minute, cfg.Workers.AutoLockAfter)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestParseEnv_UnprefixedIgnored(t *testing.T) {
	t.Setenv("APP_BUNDLE_ID", "not.ours")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.App.BundleID)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("CLIPER_WORKERS_AUTO_LOCK_AFTER", "forever")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
