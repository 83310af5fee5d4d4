// Package texture decodes image files into display-ready pixel data.
//
// A Handle stands in for a GPU-resident texture: the toolkit uploads the
// pixels on first draw, so holding a Handle pins both the decoded buffer
// and the uploaded copy. At most one Handle should be alive per browser;
// Release it before loading a replacement.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"
)

// Handle is an opaque reference to decoded image pixels ready for display.
type Handle interface {
	// Image returns the decoded pixels. Must not be called after Release.
	Image() image.Image
	// Size returns the native pixel dimensions of the decoded image.
	Size() (width, height int)
	// Release frees the pixel buffer. Exactly one Release must precede
	// every replacement load.
	Release()
}

// Loader decodes an image file into a Handle.
type Loader interface {
	Load(path string) (Handle, error)
}

// FileLoader decodes PNG and JPEG files from the local filesystem.
type FileLoader struct{}

// Load decodes the file at path into a 4-channel NRGBA buffer regardless
// of the source channel count and returns a handle carrying the pixels
// and native dimensions. Failure carries no structure beyond the decode
// error; the caller logs it.
func (FileLoader) Load(path string) (Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := src.Bounds()
	pix := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(pix, pix.Bounds(), src, bounds.Min, draw.Src)

	return &pixelHandle{pix: pix, width: bounds.Dx(), height: bounds.Dy()}, nil
}

// pixelHandle is the FileLoader-backed Handle implementation.
type pixelHandle struct {
	pix           *image.NRGBA
	width, height int
	released      bool
}

func (h *pixelHandle) Image() image.Image {
	if h.released {
		panic("texture: Image called after Release")
	}
	return h.pix
}

func (h *pixelHandle) Size() (int, int) {
	return h.width, h.height
}

func (h *pixelHandle) Release() {
	h.released = true
	h.pix = nil
}
