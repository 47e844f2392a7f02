// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages used by the cliper
// command line.
//
// All Msg* constants are human-readable strings printed to the user when a
// command fails. Keeping them in one place ensures consistent wording across
// commands; [UserMessage] maps an error chain to one of them.
package app

import (
	"errors"

	"github.com/MKhiriev/go-clip-keeper/internal/clipboard"
	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
	"github.com/MKhiriev/go-clip-keeper/internal/service"
	"github.com/MKhiriev/go-clip-keeper/internal/store"
)

const (
	// MsgItemNotFound is shown when a command targets an id with no row.
	MsgItemNotFound = "item not found"

	// MsgLocked is shown when content must be decrypted but the master key
	// is not loaded.
	MsgLocked = "the history is locked, unlock it first"

	// MsgUndecryptable is shown when a stored item was sealed under another
	// master key, typically before a key reset.
	MsgUndecryptable = "item cannot be decrypted with the current master key"

	// MsgKeyStoreUnavailable is shown when the OS keyring or the sealed key
	// file cannot be read or written.
	MsgKeyStoreUnavailable = "master key store is unavailable"

	// MsgWrongPassphrase is shown when the sealed key file does not open
	// with the configured passphrase.
	MsgWrongPassphrase = "wrong passphrase for the sealed key file"

	// MsgStorageUnavailable is shown when the data directory or database
	// cannot be opened.
	MsgStorageUnavailable = "clipboard history database is unavailable"

	// MsgClipboardTimeout is shown when the OS clipboard did not answer in
	// time.
	MsgClipboardTimeout = "the system clipboard did not respond"

	// MsgClipboardUnsupported is shown when the active clipboard backend
	// cannot hold the item's representation.
	MsgClipboardUnsupported = "the clipboard backend cannot hold this kind of item"

	// MsgNotAnImage is shown when an image-only command targets another
	// kind.
	MsgNotAnImage = "item is not an image"

	// MsgInternalError is shown for anything else.
	MsgInternalError = "internal error"
)

// UserMessage returns the Msg* text describing err. The first matching
// sentinel in the order below wins.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, store.ErrItemNotFound):
		return MsgItemNotFound
	case errors.Is(err, crypto.ErrLocked):
		return MsgLocked
	case errors.Is(err, crypto.ErrKeyStore) && errors.Is(err, crypto.ErrAuthentication):
		return MsgWrongPassphrase
	case errors.Is(err, crypto.ErrKeyStore), errors.Is(err, crypto.ErrEmptyPassphrase):
		return MsgKeyStoreUnavailable
	case errors.Is(err, service.ErrDecryption):
		return MsgUndecryptable
	case errors.Is(err, service.ErrNotAnImage):
		return MsgNotAnImage
	case errors.Is(err, store.ErrStorageInit):
		return MsgStorageUnavailable
	case errors.Is(err, clipboard.ErrTimeout):
		return MsgClipboardTimeout
	case errors.Is(err, clipboard.ErrUnsupported):
		return MsgClipboardUnsupported
	default:
		return MsgInternalError
	}
}
