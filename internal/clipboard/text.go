package clipboard

import (
	"fmt"
	"image"

	atotto "github.com/atotto/clipboard"
)

// textBackend is a text-only backend built on github.com/atotto/clipboard,
// which shells out to pbcopy/xclip/xsel/wl-copy or uses the Windows API.
// It is used when the native backend cannot be initialised.
type textBackend struct {
	counter hashCounter
}

// NewText returns the text-only backend, or ErrUnavailable when no
// clipboard utility is installed.
func NewText() (Backend, error) {
	if atotto.Unsupported {
		return nil, fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	return &textBackend{}, nil
}

func (b *textBackend) Name() string { return "text-only (atotto)" }

func (b *textBackend) ChangeCount() (int64, error) {
	text, err := atotto.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("read clipboard: %w", err)
	}
	return b.counter.observe([]byte(text)), nil
}

func (b *textBackend) FileURLs() ([]string, error) { return nil, nil }
func (b *textBackend) RTF() ([]byte, error)        { return nil, nil }
func (b *textBackend) Image() (image.Image, error) { return nil, nil }

func (b *textBackend) Text() (string, bool, error) {
	text, err := atotto.ReadAll()
	if err != nil {
		return "", false, fmt.Errorf("read clipboard: %w", err)
	}
	return text, text != "", nil
}

func (b *textBackend) WriteText(text string) error {
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

func (b *textBackend) WriteRTF([]byte) error { return ErrUnsupported }

func (b *textBackend) WriteImage(image.Image) error { return ErrUnsupported }

// WriteFileRef writes the path as plain text, the closest a text-only
// clipboard gets to a file reference.
func (b *textBackend) WriteFileRef(path string) error {
	return b.WriteText(path)
}

func (b *textBackend) Close() error { return nil }
