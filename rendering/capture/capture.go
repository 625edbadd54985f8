// Package capture turns framebuffer read-backs into image files
package capture

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// FromPixels wraps tightly packed RGBA bytes as read by glReadPixels.
// GL rows start at the bottom, so the result is flipped to top-down.
func FromPixels(pix []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("pixel buffer is %d bytes, want %d for %dx%d", len(pix), width*height*4, width, height)
	}
	bottomUp := &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return transform.FlipV(bottomUp), nil
}

// Encoder picks an encoder from the file extension: .png, .jpg/.jpeg or .bmp
func Encoder(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(95), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported screenshot format %q", filepath.Ext(path))
	}
}

// Save writes img to path in the format its extension names
func Save(path string, img image.Image) error {
	enc, err := Encoder(path)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, enc); err != nil {
		return fmt.Errorf("failed to save screenshot %s: %w", path, err)
	}
	return nil
}

// Filename returns a timestamped screenshot name inside dir
func Filename(dir string, t time.Time) string {
	return filepath.Join(dir, "screenshot-"+t.Format("20060102-150405")+".png")
}
