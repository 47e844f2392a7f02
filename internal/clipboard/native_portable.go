//go:build !(darwin && cgo)

package clipboard

import (
	"fmt"
	"image"

	"golang.design/x/clipboard"

	"github.com/MKhiriev/go-clip-keeper/internal/logger"
)

// portableBackend covers Linux (X11), Windows and macOS builds without cgo
// through golang.design/x/clipboard. The platform change counter is not
// exposed there, so one is synthesized from the clipboard contents.
// File references and RTF are not readable.
type portableBackend struct {
	counter hashCounter
	log     *logger.Logger
}

// newNative returns the golang.design backend. clipboard.Init is called here
// rather than in init() so that commands which never touch the clipboard
// don't fail on headless systems.
func newNative(log *logger.Logger) (Backend, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return &portableBackend{log: log}, nil
}

func (b *portableBackend) Name() string { return "portable (golang.design)" }

func (b *portableBackend) ChangeCount() (int64, error) {
	text := clipboard.Read(clipboard.FmtText)
	img := clipboard.Read(clipboard.FmtImage)
	return b.counter.observe(text, img), nil
}

func (b *portableBackend) FileURLs() ([]string, error) { return nil, nil }
func (b *portableBackend) RTF() ([]byte, error)        { return nil, nil }

func (b *portableBackend) Text() (string, bool, error) {
	text := clipboard.Read(clipboard.FmtText)
	if text == nil {
		return "", false, nil
	}
	return string(text), true, nil
}

func (b *portableBackend) Image() (image.Image, error) {
	return readImage()
}

func (b *portableBackend) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (b *portableBackend) WriteRTF([]byte) error { return ErrUnsupported }

func (b *portableBackend) WriteImage(img image.Image) error {
	return writeImage(img)
}

// WriteFileRef writes the path as plain text; golang.design has no
// file-list format.
func (b *portableBackend) WriteFileRef(path string) error {
	b.log.Debug().Str("path", path).Msg("file references are written as text on this platform")
	return b.WriteText(path)
}

func (b *portableBackend) Close() error { return nil }
