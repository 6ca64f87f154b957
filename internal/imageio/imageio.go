// Package imageio converts raw backend pixel readbacks into standard
// images and persists them. Backends deliver packed 24-bit BGR with a
// bottom-left origin; output follows the top-left convention.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// I/O errors.
var (
	// ErrShortBuffer is returned when the pixel buffer is smaller than
	// width*height*3 bytes.
	ErrShortBuffer = errors.New("imageio: pixel buffer too small")

	// ErrInvalidSize is returned for non-positive dimensions.
	ErrInvalidSize = errors.New("imageio: invalid dimensions")
)

// FromBGR converts a packed 24-bit BGR buffer with bottom-left origin
// into a top-left *image.RGBA: channels are reordered to RGB and rows
// are flipped vertically in one pass.
func FromBGR(raw []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if len(raw) < width*height*3 {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(raw), width*height*3)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		srcRow := (height - 1 - y) * width * 3
		dstRow := y * img.Stride
		for x := 0; x < width; x++ {
			src := srcRow + x*3
			dst := dstRow + x*4
			img.Pix[dst+0] = raw[src+2] // R
			img.Pix[dst+1] = raw[src+1] // G
			img.Pix[dst+2] = raw[src+0] // B
			img.Pix[dst+3] = 0xff
		}
	}
	return img, nil
}

// SaveBMP writes the image to path in BMP format.
func SaveBMP(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := bmp.Encode(f, img); err != nil {
		return fmt.Errorf("imageio: encode bmp: %w", err)
	}
	return nil
}

// SavePNG writes the image to path in PNG format.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}
	return nil
}
