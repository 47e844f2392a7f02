package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/config"
	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
	"github.com/MKhiriev/go-clip-keeper/internal/workers"
)

// App is the composition root of cliper. It implements [Client].
type App struct {
	cfg      *config.StructuredConfig
	logger   *logger.Logger
	storages *store.Storages
	backend  clipboard.Backend
	keys     crypto.KeyManager
	services *service.Services
}

// NewApp wires every component from cfg. A failure to prepare the data
// directory or the database is returned wrapping store.ErrStorageInit.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}

	keyStore, err := newKeyStore(cfg)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create key store: %w", err)
	}
	keys := crypto.NewKeyManager(keyStore, log)

	backend, err := clipboard.New(cfg.Watcher.Backend, cfg.Watcher.ClipboardTimeout, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create clipboard backend: %w", err)
	}

	services := service.NewServices(backend, keys, storages, service.ServicesOptions{
		PollInterval:  cfg.Watcher.PollInterval,
		AutoLockAfter: cfg.Workers.AutoLockAfter,
	}, log)

	log.Debug().
		Str("keystore", keyStore.Name()).
		Str("clipboard", backend.Name()).
		Str("data_dir", cfg.Storage.DataDir).
		Msg("application wired")

	return &App{
		cfg:      cfg,
		logger:   log,
		storages: storages,
		backend:  backend,
		keys:     keys,
		services: services,
	}, nil
}

func newKeyStore(cfg *config.StructuredConfig) (crypto.KeyStore, error) {
	switch cfg.Keystore.Backend {
	case config.KeystoreFile:
		return crypto.NewFileStore(cfg.Storage.DataDir, cfg.Keystore.Passphrase)
	case config.KeystoreKeyring, "":
		return crypto.NewKeyringStore(cfg.App.BundleID), nil
	default:
		return nil, fmt.Errorf("unknown keystore backend %q", cfg.Keystore.Backend)
	}
}

// Clip implements Client.
func (a *App) Clip() service.ClipService {
	return a.services.Clip
}

// RunDaemon implements Client.
func (a *App) RunDaemon(ctx context.Context, extra ...workers.Worker) error {
	if a.cfg.Watcher.StartLocked {
		a.logger.Info().Msg("starting locked, text and images are not captured until unlock")
	} else if err := a.services.Clip.Unlock(ctx); err != nil {
		return fmt.Errorf("unlock: %w", err)
	}

	ws := append([]workers.Worker{a.services.Watcher, a.services.AutoLocker}, extra...)
	return workers.NewWorkers(ws...).Run(ctx)
}

// Close implements Client.
func (a *App) Close() error {
	a.keys.Lock()
	return errors.Join(a.backend.Close(), a.storages.Close())
}
