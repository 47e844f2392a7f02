// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/crypto"
	"github.com/MKhiriev/go-clip-keeper/internal/logger"
)

const (
	minAutoLockCheck = 10 * time.Millisecond
	maxAutoLockCheck = time.Second
)

// AutoLocker locks the master key once no activity has been recorded for
// the configured idle period. Clipboard captures do not count as activity;
// only explicit calls to Touch do.
type AutoLocker struct {
	keys   crypto.KeyManager
	idle   time.Duration
	logger *logger.Logger
	now    func() time.Time

	lastActivity atomic.Int64
}

// NewAutoLocker creates an AutoLocker. An idle of zero or less disables it:
// Run then only waits for ctx.
func NewAutoLocker(keys crypto.KeyManager, idle time.Duration, log *logger.Logger) *AutoLocker {
	a := &AutoLocker{
		keys:   keys,
		idle:   idle,
		logger: log,
		now:    time.Now,
	}
	a.Touch()
	return a
}

// Touch implements ActivityTracker.
func (a *AutoLocker) Touch() {
	a.lastActivity.Store(a.now().UnixNano())
}

// Run checks the idle time until ctx is cancelled. It returns nil on
// cancellation.
func (a *AutoLocker) Run(ctx context.Context) error {
	if a.idle <= 0 {
		<-ctx.Done()
		return nil
	}

	a.logger.Info().Dur("idle", a.idle).Msg("auto-lock enabled")

	t := time.NewTicker(a.checkInterval())
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			a.check()
		}
	}
}

func (a *AutoLocker) check() {
	if !a.keys.IsUnlocked() {
		return
	}
	idleFor := a.now().Sub(time.Unix(0, a.lastActivity.Load()))
	if idleFor < a.idle {
		return
	}
	a.keys.Lock()
	a.logger.Info().Dur("idle_for", idleFor).Msg("master key locked after inactivity")
}

func (a *AutoLocker) checkInterval() time.Duration {
	return min(max(a.idle/10, minAutoLockCheck), maxAutoLockCheck)
}
