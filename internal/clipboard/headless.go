package clipboard

import "image"

// headlessBackend is a no-op clipboard backend for environments without a
// display server (headless Linux servers, containers, CI).
// Its counter never changes and writes are discarded.
type headlessBackend struct{}

// NewHeadless returns the no-op backend.
func NewHeadless() Backend { return headlessBackend{} }

func (headlessBackend) Name() string                 { return "headless (no-op)" }
func (headlessBackend) ChangeCount() (int64, error)  { return 0, nil }
func (headlessBackend) FileURLs() ([]string, error)  { return nil, nil }
func (headlessBackend) RTF() ([]byte, error)         { return nil, nil }
func (headlessBackend) Text() (string, bool, error)  { return "", false, nil }
func (headlessBackend) Image() (image.Image, error)  { return nil, nil }
func (headlessBackend) WriteText(string) error       { return nil }
func (headlessBackend) WriteRTF([]byte) error        { return nil }
func (headlessBackend) WriteImage(image.Image) error { return nil }
func (headlessBackend) WriteFileRef(string) error    { return nil }
func (headlessBackend) Close() error                 { return nil }
