package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout. Durations accept strings
// such as "250ms" or "5m".
type StructuredJSONConfig struct {
	App struct {
		BundleID string `json:"bundle_id"`
	} `json:"app,omitempty"`

	Storage struct {
		DataDir     string   `json:"data_dir"`
		BusyTimeout Duration `json:"busy_timeout"`
	} `json:"storage,omitempty"`

	Keystore struct {
		Backend string `json:"backend"`
	} `json:"keystore,omitempty"`

	Watcher struct {
		PollInterval     Duration `json:"poll_interval"`
		ClipboardTimeout Duration `json:"clipboard_timeout"`
		Backend          string   `json:"backend"`
		StartLocked      bool     `json:"start_locked"`
	} `json:"watcher,omitempty"`

	Workers struct {
		AutoLockAfter Duration `json:"auto_lock_after"`
	} `json:"workers,omitempty"`

	Log struct {
		Level  string `json:"level"`
		Format string `json:"format"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			BundleID: jsonCfg.App.BundleID,
		},
		Storage: Storage{
			DataDir:     jsonCfg.Storage.DataDir,
			BusyTimeout: time.Duration(jsonCfg.Storage.BusyTimeout),
		},
		Keystore: Keystore{
			Backend: jsonCfg.Keystore.Backend,
		},
		Watcher: Watcher{
			PollInterval:     time.Duration(jsonCfg.Watcher.PollInterval),
			ClipboardTimeout: time.Duration(jsonCfg.Watcher.ClipboardTimeout),
			Backend:          jsonCfg.Watcher.Backend,
			StartLocked:      jsonCfg.Watcher.StartLocked,
		},
		Workers: Workers{
			AutoLockAfter: time.Duration(jsonCfg.Workers.AutoLockAfter),
		},
		Log: Log{
			Level:  jsonCfg.Log.Level,
			Format: jsonCfg.Log.Format,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
