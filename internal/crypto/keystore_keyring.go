// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	keyringServiceSuffix = ".masterkey"
	keyringAccount       = "default"
)

// keyringStore keeps the master key as a generic password in the OS
// credential store (macOS Keychain, Secret Service, Windows Credential
// Manager). The key is base64-encoded because the keyring API stores
// strings.
type keyringStore struct {
	service string
	account string
}

// NewKeyringStore returns a [KeyStore] that stores the key under the service
// "<bundleID>.masterkey" and the account "default".
func NewKeyringStore(bundleID string) KeyStore {
	return &keyringStore{
		service: bundleID + keyringServiceSuffix,
		account: keyringAccount,
	}
}

func (s *keyringStore) Name() string { return "keyring:" + s.service }

// Load implements [KeyStore].
func (s *keyringStore) Load(_ context.Context) ([]byte, error) {
	encoded, err := keyring.Get(s.service, s.account)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, ErrSecretNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read keyring: %w", err)
	}

	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode keyring secret: %w", err)
	}
	return key, nil
}

// Save implements [KeyStore].
func (s *keyringStore) Save(_ context.Context, key []byte) error {
	if err := keyring.Set(s.service, s.account, base64.StdEncoding.EncodeToString(key)); err != nil {
		return fmt.Errorf("write keyring: %w", err)
	}
	return nil
}

// Delete implements [KeyStore].
func (s *keyringStore) Delete(_ context.Context) error {
	err := keyring.Delete(s.service, s.account)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrSecretNotFound
	}
	if err != nil {
		return fmt.Errorf("delete keyring secret: %w", err)
	}
	return nil
}
