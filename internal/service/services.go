package service

import (
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
)

// Services groups the clipboard use cases sharing one key manager, one
// store and one clipboard backend.
type Services struct {
	Watcher    Watcher
	Writer     Writer
	AutoLocker *AutoLocker
	Clip       ClipService
}

// ServicesOptions carries the timing knobs of the background jobs.
type ServicesOptions struct {
	PollInterval  time.Duration
	AutoLockAfter time.Duration
}

// NewServices wires the watcher, writer, auto-lock job and facade.
func NewServices(backend clipboard.Backend, keys crypto.KeyManager, storages *store.Storages, opts ServicesOptions, log *logger.Logger) *Services {
	autoLocker := NewAutoLocker(keys, opts.AutoLockAfter, log)
	writer := NewWriter(backend, keys, storages.Items, log)

	return &Services{
		Watcher:    NewWatcher(backend, keys, storages.Items, opts.PollInterval, log),
		Writer:     writer,
		AutoLocker: autoLocker,
		Clip:       NewClipService(keys, storages.Items, writer, autoLocker, log),
	}
}
