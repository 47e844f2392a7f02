package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig           = "config"
	FlagBundleID         = "bundle-id"
	FlagDataDir          = "data-dir"
	FlagKeystore         = "keystore"
	FlagPollInterval     = "poll-interval"
	FlagClipboardTimeout = "clipboard-timeout"
	FlagClipboardBackend = "clipboard-backend"
	FlagStartLocked      = "start-locked"
	FlagAutoLockAfter    = "auto-lock-after"
	FlagLogLevel         = "log-level"
	FlagLogFormat        = "log-format"
)

// RegisterFlags defines all configuration flags on fs.
//
// Flags:
//
//	-c/--config           json file path with configs
//	--bundle-id           keyring namespace
//	--data-dir            directory holding cliper.sqlite
//	--keystore            master key backend (keyring|file)
//	--poll-interval       clipboard polling interval (e.g. "250ms")
//	--clipboard-timeout   bound for a single clipboard call (e.g. "2s")
//	--clipboard-backend   auto|native|text|headless
//	--start-locked        do not unlock at daemon start
//	--auto-lock-after     idle time before the key is locked (0 disables)
//	--log-level           trace|debug|info|warn|error
//	--log-format          auto|text|json
//
// Defaults are left zero here; [GetStructuredConfig] only takes flags that
// were explicitly set.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagBundleID, "", "Keyring namespace (default \""+DefaultBundleID+"\")")
	fs.String(FlagDataDir, "", "Data directory (default <user config dir>/cliper)")
	fs.String(FlagKeystore, "", "Master key backend: keyring|file (default \"keyring\")")
	fs.Duration(FlagPollInterval, 0, "Clipboard polling interval (default 250ms)")
	fs.Duration(FlagClipboardTimeout, 0, "Timeout for a single clipboard call (default 2s)")
	fs.String(FlagClipboardBackend, "", "Clipboard backend: auto|native|text|headless")
	fs.Bool(FlagStartLocked, false, "Start the daemon without unlocking the key")
	fs.Duration(FlagAutoLockAfter, 0, "Lock the key after this idle time (0 disables)")
	fs.String(FlagLogLevel, "", "Log level: trace|debug|info|warn|error")
	fs.String(FlagLogFormat, "", "Log format: auto|text|json")
}

// parseFlags converts the flags that were set on fs into a config layer.
// Flags that were not changed are left zero.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case FlagConfig:
			cfg.JSONFilePath = f.Value.String()
		case FlagBundleID:
			cfg.App.BundleID = f.Value.String()
		case FlagDataDir:
			cfg.Storage.DataDir = f.Value.String()
		case FlagKeystore:
			cfg.Keystore.Backend = f.Value.String()
		case FlagPollInterval:
			cfg.Watcher.PollInterval, err = fs.GetDuration(f.Name)
		case FlagClipboardTimeout:
			cfg.Watcher.ClipboardTimeout, err = fs.GetDuration(f.Name)
		case FlagClipboardBackend:
			cfg.Watcher.Backend = f.Value.String()
		case FlagStartLocked:
			cfg.Watcher.StartLocked, err = fs.GetBool(f.Name)
		case FlagAutoLockAfter:
			cfg.Workers.AutoLockAfter, err = fs.GetDuration(f.Name)
		case FlagLogLevel:
			cfg.Log.Level = f.Value.String()
		case FlagLogFormat:
			cfg.Log.Format = f.Value.String()
		}
		if err != nil {
			err = fmt.Errorf("error reading flag --%s: %w", f.Name, err)
		}
	})

	if err != nil {
		return nil, err
	}
	return cfg, nil
}
