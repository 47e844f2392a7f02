// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
)

const (
	// KeySize is the master key length (AES-256).
	KeySize = 32
	// NonceSize is the GCM nonce length prepended to every blob.
	NonceSize = 12
	// TagSize is the GCM authentication tag length appended by Seal.
	TagSize = 16
	// MinBlobSize is the length of a sealed empty plaintext.
	MinBlobSize = NonceSize + TagSize
)

// keyManager is the private implementation of [KeyManager].
type keyManager struct {
	store  KeyStore
	random io.Reader
	logger *logger.Logger

	mu  sync.Mutex
	key *SecretBuffer
}

// NewKeyManager constructs a locked [KeyManager] backed by store.
// Keys and nonces are drawn from crypto/rand.
func NewKeyManager(store KeyStore, log *logger.Logger) KeyManager {
	return &keyManager{
		store:  store,
		random: rand.Reader,
		logger: log,
	}
}

// Unlock implements [KeyManager].
func (k *keyManager) Unlock(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key != nil {
		return nil
	}

	raw, err := k.store.Load(ctx)
	switch {
	case errors.Is(err, ErrSecretNotFound):
		k.logger.Info().Str("keystore", k.store.Name()).Msg("no master key stored, generating a new one")
		if raw, err = k.generateAndSave(ctx); err != nil {
			return err
		}
	case err != nil:
		k.logger.Err(err).Str("func", "keyManager.Unlock").Str("keystore", k.store.Name()).Msg("failed to load master key")
		return fmt.Errorf("%w: load master key: %w", ErrKeyStore, err)
	}

	if len(raw) != KeySize {
		Zero(raw)
		return fmt.Errorf("%w: %w: got %d bytes", ErrKeyStore, ErrInvalidKeySize, len(raw))
	}

	k.key = NewSecretBuffer(raw)
	k.logger.Debug().Msg("key manager unlocked")
	return nil
}

// Lock implements [KeyManager].
func (k *keyManager) Lock() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key == nil {
		return
	}
	k.key.Destroy()
	k.key = nil
	k.logger.Debug().Msg("key manager locked")
}

// ResetMasterKey implements [KeyManager].
func (k *keyManager) ResetMasterKey(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.store.Delete(ctx); err != nil && !errors.Is(err, ErrSecretNotFound) {
		k.logger.Err(err).Str("func", "keyManager.ResetMasterKey").Msg("failed to delete master key")
		return fmt.Errorf("%w: delete master key: %w", ErrKeyStore, err)
	}

	raw, err := k.generateAndSave(ctx)
	if err != nil {
		k.restoreKey(ctx)
		return err
	}

	if k.key != nil {
		k.key.Destroy()
	}
	k.key = NewSecretBuffer(raw)
	k.logger.Warn().Msg("master key reset: previously stored items can no longer be decrypted")
	return nil
}

// restoreKey writes the in-memory key back to the store after a failed
// reset so that a later Unlock does not mint a new one.
func (k *keyManager) restoreKey(ctx context.Context) {
	if k.key == nil {
		return
	}
	err := k.key.With(func(secret []byte) error {
		return k.store.Save(ctx, secret)
	})
	if err != nil {
		k.logger.Err(err).Str("func", "keyManager.restoreKey").Str("keystore", k.store.Name()).
			Msg("failed to restore master key after reset failure: stored items may become unreadable")
		return
	}
	k.logger.Warn().Msg("master key reset failed, previous key restored")
}

// IsUnlocked implements [KeyManager].
func (k *keyManager) IsUnlocked() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.key != nil
}

// Encrypt implements [KeyManager]. The returned blob is
// nonce ‖ ciphertext ‖ tag.
func (k *keyManager) Encrypt(plaintext []byte) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key == nil {
		return nil, ErrLocked
	}

	var blob []byte
	err := k.key.With(func(key []byte) error {
		gcm, err := newGCM(key)
		if err != nil {
			return err
		}

		nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
		if _, err = io.ReadFull(k.random, nonce); err != nil {
			return fmt.Errorf("generate nonce: %w", err)
		}

		blob = gcm.Seal(nonce, nonce, plaintext, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return blob, nil
}

// Decrypt implements [KeyManager].
func (k *keyManager) Decrypt(blob []byte) ([]byte, error) {
	if len(blob) < MinBlobSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrMalformedInput, len(blob), MinBlobSize)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.key == nil {
		return nil, ErrLocked
	}

	var plaintext []byte
	err := k.key.With(func(key []byte) error {
		gcm, err := newGCM(key)
		if err != nil {
			return err
		}

		nonce, ciphertext := blob[:NonceSize], blob[NonceSize:]
		plaintext, err = gcm.Open(nil, nonce, ciphertext, nil)
		if err != nil {
			return ErrAuthentication
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

// generateAndSave draws a fresh key from the CSPRNG and persists it.
// The caller owns the returned slice and must hand it to a SecretBuffer.
func (k *keyManager) generateAndSave(ctx context.Context) ([]byte, error) {
	raw := make([]byte, KeySize)
	if _, err := io.ReadFull(k.random, raw); err != nil {
		return nil, fmt.Errorf("generate master key: %w", err)
	}

	if err := k.store.Save(ctx, raw); err != nil {
		Zero(raw)
		k.logger.Err(err).Str("func", "keyManager.generateAndSave").Str("keystore", k.store.Name()).Msg("failed to persist master key")
		return nil, fmt.Errorf("%w: save master key: %w", ErrKeyStore, err)
	}

	return raw, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
