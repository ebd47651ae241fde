// Package imagesink persists rendered frames. The file extension picks the
// encoder.
package imagesink

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format names an output encoding.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	TGA  Format = "tga"
)

// FormatFor returns the format matching path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".webp":
		return WebP, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".tga":
		return TGA, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Encode writes img to w in the given format. All formats are lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case TGA:
		return tga.Encode(w, img)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Save writes img to path, creating parent directories as needed.
func Save(path string, img image.Image) error {
	f, err := FormatFor(path)
	if err != nil {
		return fmt.Errorf("imagesink: save %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("imagesink: save %s: %w", path, err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imagesink: save %s: %w", path, err)
	}
	if err := Encode(out, img, f); err != nil {
		out.Close()
		return fmt.Errorf("imagesink: encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("imagesink: save %s: %w", path, err)
	}
	return nil
}

// Load decodes an image written by Save.
func Load(path string) (image.Image, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, fmt.Errorf("imagesink: load %s: %w", path, err)
	}
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imagesink: load %s: %w", path, err)
	}
	defer in.Close()

	var img image.Image
	switch f {
	case PNG:
		img, err = png.Decode(in)
	case WebP:
		img, err = webp.Decode(in)
	case BMP:
		img, err = bmp.Decode(in)
	case TIFF:
		img, err = tiff.Decode(in)
	case TGA:
		img, err = tga.Decode(in)
	}
	if err != nil {
		return nil, fmt.Errorf("imagesink: decode %s: %w", path, err)
	}
	return img, nil
}
