// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/internal/workers"
)

// Client defines the lifecycle contract of a wired cliper process.
type Client interface {
	// Clip returns the command-facing service.
	Clip() service.ClipService

	// RunDaemon unlocks the key (unless configured to start locked) and runs
	// the watcher, the auto-lock job and any extra workers until ctx is
	// cancelled.
	RunDaemon(ctx context.Context, extra ...workers.Worker) error

	// Close locks the key and releases the clipboard and the database.
	Close() error
}
