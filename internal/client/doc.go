// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of cliper.
//
// It builds the storage layer, the master key manager, the clipboard
// backend and the services exactly once and hands the shared instances to
// the daemon loop and the one-shot commands.
package client
