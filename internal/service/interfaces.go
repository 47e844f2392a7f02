// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the clipboard history use cases: capturing
// clipboard changes into the encrypted store, writing stored items back to
// the clipboard and the command-facing facade that ties both to the key
// manager.
package service

import (
	"context"

	"github.com/MKhiriev/go-clip-keeper/models"
)

// Watcher polls the system clipboard and persists every new capture.
type Watcher interface {
	// Tick performs exactly one sample: it reads the change counter and,
	// when the counter moved, classifies and stores the new content.
	// Storage and clipboard errors are returned; Run only logs them.
	Tick(ctx context.Context) error

	// Run calls Tick on every poll interval until ctx is cancelled.
	// It returns nil on cancellation.
	Run(ctx context.Context) error

	// Start launches Run in a background goroutine, stopping any previous
	// run first.
	Start(ctx context.Context)

	// Stop cancels the background run and waits for it to exit. Safe to
	// call when nothing is running.
	Stop()
}

// Writer places stored items back onto the system clipboard.
type Writer interface {
	// CopyBack decrypts every blob of item id and then writes the item to
	// the clipboard. Decryption failures wrap ErrDecryption and leave the
	// clipboard untouched; a missing id returns store.ErrItemNotFound.
	CopyBack(ctx context.Context, id int64) error
}

// ClipService is the boundary used by the command layer.
type ClipService interface {
	// Unlock loads or creates the master key.
	Unlock(ctx context.Context) error
	// Lock zeroizes the in-memory key.
	Lock()
	// ResetMasterKey replaces the master key. Stored items sealed under the
	// old key can no longer be decrypted.
	ResetMasterKey(ctx context.Context) error
	// IsUnlocked reports whether the master key is loaded.
	IsUnlocked() bool

	// ListRecent returns up to limit items, pinned first then newest first,
	// optionally restricted to kinds. Text items carry a decrypted preview
	// when the key is unlocked; file items carry their base name.
	ListRecent(ctx context.Context, limit int, kinds ...models.Kind) ([]models.ItemView, error)
	// GetItemRaw returns the stored row without decrypting it.
	GetItemRaw(ctx context.Context, id int64) (models.RawItem, error)
	// CopyItem writes item id back to the clipboard.
	CopyItem(ctx context.Context, id int64) error
	// PinItem sets or clears the pinned flag.
	PinItem(ctx context.Context, id int64, pinned bool) error
	// DeleteItem removes one item.
	DeleteItem(ctx context.Context, id int64) error
	// ImagePreview returns a PNG of image item id scaled down so that its
	// longer side is at most maxSide pixels.
	ImagePreview(ctx context.Context, id int64, maxSide int) ([]byte, error)
	// ClearHistory removes every item and returns how many were deleted.
	ClearHistory(ctx context.Context) (int64, error)
}

// ActivityTracker records user activity for the auto-lock job.
type ActivityTracker interface {
	Touch()
}
