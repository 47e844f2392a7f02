// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard provides the OS clipboard capabilities needed to capture
// and restore history entries. Build constraints select the implementation:
//
//	native_darwin.go  : macOS: NSPasteboard via cgo (change count, file URLs,
//	                    RTF) plus golang.design/x/clipboard for text/images
//	native_portable.go: everything else: golang.design/x/clipboard with a
//	                    content-hash change counter
//	text.go           : text-only fallback on github.com/atotto/clipboard
//	headless.go       : no-op backend for machines without a display
//
// Every backend returned by [New] is wrapped by [WithTimeout].
package clipboard

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
)

//go:generate mockgen -source=backend.go -destination=../mock/clipboard_mock.go -package=mock

// Backend is the set of clipboard operations the watcher and writer use.
// Implementations are not required to be safe for concurrent use; callers
// serialize access.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ChangeCount returns a counter that changes whenever the clipboard
	// contents change.
	ChangeCount() (int64, error)

	// FileURLs returns the raw file URL strings on the clipboard, nil when
	// there are none.
	FileURLs() ([]string, error)

	// RTF returns the rich-text representation, nil when absent.
	RTF() ([]byte, error)

	// Text returns the plain-text representation. ok is false when the
	// clipboard holds no text.
	Text() (text string, ok bool, err error)

	// Image returns the image representation, nil when absent.
	Image() (image.Image, error)

	// WriteText replaces the clipboard contents with text.
	WriteText(text string) error

	// WriteRTF adds an RTF representation next to what was written last.
	// Backends without rich text support return ErrUnsupported.
	WriteRTF(rtf []byte) error

	// WriteImage replaces the clipboard contents with img.
	WriteImage(img image.Image) error

	// WriteFileRef replaces the clipboard contents with a reference to the
	// file at path. The file does not have to exist.
	WriteFileRef(path string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Backend selection modes accepted by [New].
const (
	ModeAuto     = "auto"
	ModeNative   = "native"
	ModeText     = "text"
	ModeHeadless = "headless"
)

var (
	// ErrTimeout is returned when a clipboard call does not complete within
	// the configured bound.
	ErrTimeout = errors.New("clipboard call timed out")

	// ErrUnsupported is returned by operations the backend cannot perform.
	ErrUnsupported = errors.New("clipboard operation not supported by backend")

	// ErrUnavailable is returned by [New] when the requested backend cannot
	// be initialised.
	ErrUnavailable = errors.New("clipboard unavailable")
)

// New returns the clipboard backend for mode, bounded by timeout.
//
// In [ModeAuto] the native backend is tried first, then the text-only
// backend, and finally the headless one, so New only fails for an explicit
// mode that cannot be satisfied.
func New(mode string, timeout time.Duration, log *logger.Logger) (Backend, error) {
	var (
		b   Backend
		err error
	)

	switch mode {
	case ModeHeadless:
		b = NewHeadless()
	case ModeText:
		b, err = NewText()
	case ModeNative:
		b, err = newNative(log)
	case ModeAuto, "":
		b = newAuto(log)
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrUnavailable, mode)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().Str("backend", b.Name()).Dur("timeout", timeout).Msg("clipboard backend selected")
	return WithTimeout(b, timeout), nil
}

func newAuto(log *logger.Logger) Backend {
	b, err := newNative(log)
	if err == nil {
		return b
	}
	log.Warn().Err(err).Msg("native clipboard unavailable, falling back to text-only")

	if b, err = NewText(); err == nil {
		return b
	}
	log.Warn().Err(err).Msg("clipboard unavailable, running headless")

	return NewHeadless()
}
