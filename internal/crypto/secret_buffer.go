// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"runtime"
	"sync"
)

// SecretBuffer holds key material in memory. The bytes are page-locked where
// the OS allows it, are only reachable through [SecretBuffer.With], and are
// overwritten with zeros by [SecretBuffer.Destroy]. A buffer that becomes
// unreachable without Destroy is wiped by a finalizer.
type SecretBuffer struct {
	mu     sync.Mutex
	buf    []byte
	locked bool
}

// NewSecretBuffer copies src into a new buffer and zeroes src.
func NewSecretBuffer(src []byte) *SecretBuffer {
	buf := make([]byte, len(src))
	copy(buf, src)
	Zero(src)

	s := &SecretBuffer{buf: buf}
	if len(buf) > 0 {
		s.locked = lockMemory(buf) == nil
	}
	runtime.SetFinalizer(s, (*SecretBuffer).Destroy)
	return s
}

// With calls fn with the secret bytes. fn must not retain the slice after
// it returns. Returns ErrLocked if the buffer has been destroyed.
func (s *SecretBuffer) With(fn func(secret []byte) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return ErrLocked
	}
	return fn(s.buf)
}

// Len returns the number of secret bytes, 0 once destroyed.
func (s *SecretBuffer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf)
}

// Destroy zeroes the buffer and releases the page lock. Safe to call more
// than once.
func (s *SecretBuffer) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buf == nil {
		return
	}
	Zero(s.buf)
	if s.locked {
		_ = unlockMemory(s.buf)
		s.locked = false
	}
	s.buf = nil
	runtime.SetFinalizer(s, nil)
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	clear(b)
}
