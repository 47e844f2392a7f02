// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
)

// fakeKeys is a minimal KeyManager that only tracks lock state.
type fakeKeys struct {
	mu       sync.Mutex
	unlocked bool
	locks    int
}

func (f *fakeKeys) Unlock(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unlocked = true
	return nil
}

func (f *fakeKeys) Lock() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unlocked {
		f.locks++
	}
	f.unlocked = false
}

func (f *fakeKeys) ResetMasterKey(context.Context) error { return nil }

func (f *fakeKeys) IsUnlocked() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unlocked
}

func (f *fakeKeys) Encrypt(p []byte) ([]byte, error) { return p, nil }
func (f *fakeKeys) Decrypt(b []byte) ([]byte, error) { return b, nil }

func (f *fakeKeys) lockCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.locks
}

// ── check ───────────────────────────────────────────────────────────────────

func TestAutoLocker_Check(t *testing.T) {
	keys := &fakeKeys{unlocked: true}
	a := NewAutoLocker(keys, time.Minute, logger.Nop())

	now := time.Unix(1_700_000_000, 0)
	a.now = func() time.Time { return now }
	a.Touch()

	now = now.Add(30 * time.Second)
	a.check()
	assert.True(t, keys.IsUnlocked(), "not idle long enough")

	a.Touch()
	now = now.Add(59 * time.Second)
	a.check()
	assert.True(t, keys.IsUnlocked(), "touch resets the idle timer")

	now = now.Add(time.Second)
	a.check()
	assert.False(t, keys.IsUnlocked())
	assert.Equal(t, 1, keys.lockCount())

	now = now.Add(time.Hour)
	a.check()
	assert.Equal(t, 1, keys.lockCount(), "already locked keys are left alone")
}

func TestAutoLocker_CheckInterval(t *testing.T) {
	tests := []struct {
		idle time.Duration
		want time.Duration
	}{
		{idle: 50 * time.Millisecond, want: minAutoLockCheck},
		{idle: 2 * time.Second, want: 200 * time.Millisecond},
		{idle: 5 * time.Minute, want: maxAutoLockCheck},
	}
	for _, tt := range tests {
		a := NewAutoLocker(&fakeKeys{}, tt.idle, logger.Nop())
		assert.Equal(t, tt.want, a.checkInterval(), "idle=%s", tt.idle)
	}
}

// ── Run ─────────────────────────────────────────────────────────────────────

func TestAutoLocker_Run_LocksWhenIdle(t *testing.T) {
	keys := &fakeKeys{unlocked: true}
	a := NewAutoLocker(keys, 30*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool { return !keys.IsUnlocked() }, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestAutoLocker_Run_Disabled(t *testing.T) {
	keys := &fakeKeys{unlocked: true}
	a := NewAutoLocker(keys, 0, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
	assert.True(t, keys.IsUnlocked())
}
