// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto owns the AES-256-GCM master key of the clipboard store.
//
// The master key is 32 random bytes generated once and kept at rest in an
// OS-protected [KeyStore]. While the store is unlocked the key lives in a
// page-locked [SecretBuffer]; locking overwrites it with zeros.
//
// Every sealed blob has the layout
//
//	nonce (12 bytes) ‖ ciphertext ‖ tag (16 bytes)
//
// with empty associated data.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/key_manager_mock.go -package=mock

// KeyManager owns the in-memory master key and exposes the encryption
// primitives. All methods are safe for concurrent use; lock, unlock, reset,
// encrypt and decrypt are mutually exclusive.
type KeyManager interface {
	// Unlock loads the master key into memory. It reads the key store first
	// and generates, persists and loads a fresh key when none exists.
	// Calling Unlock on an unlocked manager is a no-op.
	// Returns an error wrapping ErrKeyStore if the store is inaccessible.
	Unlock(ctx context.Context) error

	// Lock zeroizes the in-memory key. No-op when already locked.
	Lock()

	// ResetMasterKey deletes the persisted key, generates a new one,
	// persists it and loads it. Every blob sealed under the previous key
	// becomes permanently undecryptable.
	ResetMasterKey(ctx context.Context) error

	// IsUnlocked reports whether a key is loaded.
	IsUnlocked() bool

	// Encrypt seals plaintext with a fresh random nonce.
	// Returns ErrLocked when no key is loaded.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt opens a blob produced by Encrypt. Returns ErrMalformedInput
	// for blobs shorter than nonce+tag, ErrLocked when no key is loaded and
	// ErrAuthentication when the tag does not verify.
	Decrypt(blob []byte) ([]byte, error)
}

// KeyStore persists the raw master key at rest.
type KeyStore interface {
	// Name identifies the backend in logs.
	Name() string

	// Load returns the stored key. Returns ErrSecretNotFound when no key
	// has been stored yet.
	Load(ctx context.Context) ([]byte, error)

	// Save stores key, replacing any previous value.
	Save(ctx context.Context, key []byte) error

	// Delete removes the stored key. Returns ErrSecretNotFound when there
	// is nothing to delete.
	Delete(ctx context.Context) error
}
