package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values applied before any other source.
const (
	DefaultBundleID         = "dev.cliper.app"
	DefaultKeystoreBackend  = KeystoreKeyring
	DefaultPollInterval     = 250 * time.Millisecond
	DefaultClipboardTimeout = 2 * time.Second
	DefaultBusyTimeout      = 5 * time.Second
	DefaultClipboardBackend = "auto"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "auto"
)

// Keystore backend names.
const (
	KeystoreKeyring = "keyring"
	KeystoreFile    = "file"
)

// DefaultDataDir returns <user config dir>/cliper, or "" when the user
// config directory cannot be determined.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cliper")
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{BundleID: DefaultBundleID},
		Storage: Storage{
			DataDir:     DefaultDataDir(),
			BusyTimeout: DefaultBusyTimeout,
		},
		Keystore: Keystore{Backend: DefaultKeystoreBackend},
		Watcher: Watcher{
			PollInterval:     DefaultPollInterval,
			ClipboardTimeout: DefaultClipboardTimeout,
			Backend:          DefaultClipboardBackend,
		},
		Log: Log{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
