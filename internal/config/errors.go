package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application identity settings
	// (for example, an empty bundle id).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, no data directory could be determined).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidKeystoreConfigs indicates an unknown keystore backend or a
	// file backend without a passphrase.
	ErrInvalidKeystoreConfigs = errors.New("invalid keystore configuration")
	// ErrInvalidWatcherConfigs indicates invalid clipboard watcher settings
	// (for example, a zero poll interval).
	ErrInvalidWatcherConfigs = errors.New("invalid watcher configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative auto-lock interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLogConfigs indicates an unknown log level or format.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
