// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by [KeyManager] and [KeyStore] implementations.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrLocked is returned by Encrypt and Decrypt when no key is loaded.
	ErrLocked = errors.New("key manager is locked")

	// ErrAuthentication is returned when the GCM tag does not verify:
	// the blob was tampered with, truncated or sealed under another key.
	ErrAuthentication = errors.New("authentication failed")

	// ErrMalformedInput is returned for blobs shorter than nonce+tag.
	ErrMalformedInput = errors.New("malformed sealed blob")

	// ErrKeyStore is returned when the secret store cannot be read or
	// written.
	ErrKeyStore = errors.New("key store error")

	// ErrSecretNotFound is returned by a [KeyStore] when no key is stored.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrInvalidKeySize is returned when a stored key is not KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid master key size")
)
