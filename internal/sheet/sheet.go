// Package sheet provides sprite sheet image loading.
package sheet

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Extensions lists the file extensions the loader understands, for use in
// file dialogs and drop handlers.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// Sheet is an immutable handle to a loaded sprite sheet. The decoded image
// is never mutated; replacing the sheet means loading a new one.
type Sheet struct {
	Path  string
	Image image.Image
}

// Load decodes the image at path into a Sheet.
func Load(path string) (*Sheet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &Sheet{Path: path, Image: img}, nil
}

// Width returns the sheet width in pixels.
func (s *Sheet) Width() int {
	if s == nil || s.Image == nil {
		return 0
	}
	return s.Image.Bounds().Dx()
}

// Height returns the sheet height in pixels.
func (s *Sheet) Height() int {
	if s == nil || s.Image == nil {
		return 0
	}
	return s.Image.Bounds().Dy()
}
