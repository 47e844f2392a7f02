package clipboard

import (
	"fmt"
	"image"
	"time"
)

// DefaultTimeout bounds a single clipboard call when no timeout is given.
const DefaultTimeout = 2 * time.Second

// timeoutBackend bounds every call of the wrapped backend. A call that
// overruns returns ErrTimeout; the underlying goroutine is left to finish
// on its own since OS clipboard APIs cannot be interrupted. busy is held by
// that goroutine until the wrapped call returns, so calls never overlap.
type timeoutBackend struct {
	next    Backend
	timeout time.Duration
	busy    chan struct{}
}

// WithTimeout wraps b so that each call returns ErrTimeout after d.
// A non-positive d selects [DefaultTimeout].
//
// A timed out write may still reach the clipboard once the OS call
// completes. Until it does, later calls wait for it within their own
// timeout and fail with ErrTimeout if it is still running.
func WithTimeout(b Backend, d time.Duration) Backend {
	if d <= 0 {
		d = DefaultTimeout
	}
	if tb, ok := b.(*timeoutBackend); ok {
		b = tb.next
	}
	return &timeoutBackend{next: b, timeout: d, busy: make(chan struct{}, 1)}
}

type result[T any] struct {
	val T
	err error
}

func bounded[T any](t *timeoutBackend, op string, fn func() (T, error)) (T, error) {
	var zero T

	timer := time.NewTimer(t.timeout)
	defer timer.Stop()

	select {
	case t.busy <- struct{}{}:
	case <-timer.C:
		return zero, fmt.Errorf("%w: %s: previous call still running after %s", ErrTimeout, op, t.timeout)
	}

	ch := make(chan result[T], 1)
	go func() {
		defer func() { <-t.busy }()
		v, err := fn()
		ch <- result[T]{val: v, err: err}
	}()

	select {
	case r := <-ch:
		return r.val, r.err
	case <-timer.C:
		return zero, fmt.Errorf("%w: %s after %s", ErrTimeout, op, t.timeout)
	}
}

func boundedErr(t *timeoutBackend, op string, fn func() error) error {
	_, err := bounded(t, op, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

func (t *timeoutBackend) Name() string { return t.next.Name() }

func (t *timeoutBackend) ChangeCount() (int64, error) {
	return bounded(t, "change count", t.next.ChangeCount)
}

func (t *timeoutBackend) FileURLs() ([]string, error) {
	return bounded(t, "read file urls", t.next.FileURLs)
}

func (t *timeoutBackend) RTF() ([]byte, error) {
	return bounded(t, "read rtf", t.next.RTF)
}

func (t *timeoutBackend) Text() (string, bool, error) {
	type textResult struct {
		text string
		ok   bool
	}
	r, err := bounded(t, "read text", func() (textResult, error) {
		text, ok, err := t.next.Text()
		return textResult{text: text, ok: ok}, err
	})
	return r.text, r.ok, err
}

func (t *timeoutBackend) Image() (image.Image, error) {
	return bounded(t, "read image", t.next.Image)
}

func (t *timeoutBackend) WriteText(text string) error {
	return boundedErr(t, "write text", func() error { return t.next.WriteText(text) })
}

func (t *timeoutBackend) WriteRTF(rtf []byte) error {
	return boundedErr(t, "write rtf", func() error { return t.next.WriteRTF(rtf) })
}

func (t *timeoutBackend) WriteImage(img image.Image) error {
	return boundedErr(t, "write image", func() error { return t.next.WriteImage(img) })
}

func (t *timeoutBackend) WriteFileRef(path string) error {
	return boundedErr(t, "write file ref", func() error { return t.next.WriteFileRef(path) })
}

func (t *timeoutBackend) Close() error { return t.next.Close() }
