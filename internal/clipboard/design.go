package clipboard

import (
	"fmt"
	"image"

	"golang.design/x/clipboard"
)

// readImage reads the PNG image representation through golang.design and
// decodes it. Returns nil when the clipboard holds no image.
func readImage() (image.Image, error) {
	data := clipboard.Read(clipboard.FmtImage)
	if len(data) == 0 {
		return nil, nil
	}
	img, err := DecodePNG(data)
	if err != nil {
		return nil, fmt.Errorf("decode clipboard image: %w", err)
	}
	return img, nil
}

// writeImage encodes img as PNG and places it on the clipboard.
func writeImage(img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}
