// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !linux && !darwin

package crypto

func lockMemory([]byte) error   { return nil }
func unlockMemory([]byte) error { return nil }
