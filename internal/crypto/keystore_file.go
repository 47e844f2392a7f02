// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
)

const (
	sealedKeyFileName = "masterkey.sealed"
	saltSize          = 16
)

// ErrEmptyPassphrase is returned by [NewFileStore] when no passphrase is
// configured.
var ErrEmptyPassphrase = errors.New("file key store requires a passphrase")

// fileStore seals the master key into a file for hosts without an OS
// credential store. The file layout is
//
//	salt (16) ‖ nonce (12) ‖ ciphertext ‖ tag (16)
//
// where the wrapping key is Argon2id(passphrase, salt). The wrapping key
// exists only for the duration of a Load or Save call.
type fileStore struct {
	path       string
	passphrase []byte

	// Argon2id tuning parameters. Stored in the struct so they can be
	// lowered in tests.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewFileStore returns a [KeyStore] that keeps the sealed key in
// dir/masterkey.sealed, using the Argon2id parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func NewFileStore(dir, passphrase string) (KeyStore, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	return &fileStore{
		path:         filepath.Join(dir, sealedKeyFileName),
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}, nil
}

func (s *fileStore) Name() string { return "file:" + s.path }

// Load implements [KeyStore].
func (s *fileStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSecretNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read sealed key: %w", err)
	}
	if len(data) < saltSize+MinBlobSize {
		return nil, fmt.Errorf("%w: sealed key file is %d bytes", ErrMalformedInput, len(data))
	}

	salt, sealed := data[:saltSize], data[saltSize:]
	kek := s.deriveKEK(salt)
	defer Zero(kek)

	gcm, err := newGCM(kek)
	if err != nil {
		return nil, err
	}

	// An error here almost always means a wrong passphrase.
	key, err := gcm.Open(nil, sealed[:NonceSize], sealed[NonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("unseal key file: %w", ErrAuthentication)
	}
	return key, nil
}

// Save implements [KeyStore]. The file is written atomically with mode 0600.
func (s *fileStore) Save(_ context.Context, key []byte) error {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}

	kek := s.deriveKEK(salt)
	defer Zero(kek)

	gcm, err := newGCM(kek)
	if err != nil {
		return err
	}

	nonce := make([]byte, NonceSize)
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	out := make([]byte, 0, saltSize+NonceSize+len(key)+TagSize)
	out = append(out, salt...)
	out = append(out, nonce...)
	out = gcm.Seal(out, nonce, key, nil)

	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create key dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, out, 0o600); err != nil {
		return fmt.Errorf("write sealed key: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace sealed key: %w", err)
	}
	return nil
}

// Delete implements [KeyStore].
func (s *fileStore) Delete(_ context.Context) error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrSecretNotFound
	}
	if err != nil {
		return fmt.Errorf("remove sealed key: %w", err)
	}
	return nil
}

// deriveKEK derives the 256-bit wrapping key from the passphrase and salt
// with Argon2id.
func (s *fileStore) deriveKEK(salt []byte) []byte {
	return argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, KeySize)
}
