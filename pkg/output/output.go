// Package output encodes rendered pixel buffers as image files.
package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/willbeason/escape-fractal/pkg/plane"
)

var ErrFormat = errors.New("unsupported image format")

// Format is an image file encoding.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

var encoders = map[Format]func(io.Writer, image.Image) error{
	PNG: png.Encode,
	BMP: bmp.Encode,
	TIFF: func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
}

var extensions = map[string]Format{
	".png":  PNG,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
}

// Formats lists the supported formats in sorted order.
func Formats() []string {
	names := lo.Map(lo.Keys(encoders), func(f Format, _ int) string { return string(f) })
	slices.Sort(names)
	return names
}

// FormatFromPath picks the format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q, want one of %s", ErrFormat, ext, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Image wraps pixels as an image without copying grayscale buffers. channels is 1 for
// grayscale and 3 for RGB triples.
func Image(pixels []byte, b plane.Bounds, channels int) (image.Image, error) {
	if len(pixels) != b.Width*b.Height*channels {
		return nil, fmt.Errorf("buffer of %d bytes does not hold a %v image with %d channels",
			len(pixels), b, channels)
	}
	rect := image.Rect(0, 0, b.Width, b.Height)

	switch channels {
	case 1:
		return &image.Gray{Pix: pixels, Stride: b.Width, Rect: rect}, nil
	case 3:
		img := image.NewNRGBA(rect)
		for i, j := 0, 0; i < len(pixels); i, j = i+3, j+4 {
			img.Pix[j] = pixels[i]
			img.Pix[j+1] = pixels[i+1]
			img.Pix[j+2] = pixels[i+2]
			img.Pix[j+3] = 0xff
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unsupported channel count %d", channels)
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, f Format, img image.Image) error {
	enc, ok := encoders[f]
	if !ok {
		return fmt.Errorf("%w: %q", ErrFormat, f)
	}
	return enc(w, img)
}

// WriteFile encodes pixels into the file at path, choosing the format from its
// extension.
func WriteFile(path string, pixels []byte, b plane.Bounds, channels int) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	img, err := Image(pixels, b, channels)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()

	if err := Encode(out, f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
